package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type DatasetConfig struct {
	Seed      int64  `yaml:"seed"`
	Flights   int    `yaml:"flights"`
	Customers int    `yaml:"customers"`
	Bookings  int    `yaml:"bookings"`
	Year      int    `yaml:"year"`
	OutputDir string `yaml:"output_dir"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	FlightsCacheTTL int    `yaml:"flights_cache_ttl_seconds"`
}

type KafkaConfig struct {
	Enabled            bool     `yaml:"enabled"`
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
}

// Default mirrors the original dataset constants; every sink is off.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Seed:      42,
			Flights:   50000,
			Customers: 15000,
			Bookings:  150000,
			Year:      2023,
			OutputDir: "data",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "airbooking",
			SSLMode: "disable",
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			FlightsCacheTTL: 300,
		},
		Kafka: KafkaConfig{
			Brokers:            []string{"localhost:9092"},
			BookingEventsTopic: "booking-events",
		},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
