package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Domenick1991/airdata/config"
	"github.com/Domenick1991/airdata/internal/cache"
	"github.com/Domenick1991/airdata/internal/export"
	"github.com/Domenick1991/airdata/internal/gen"
	"github.com/Domenick1991/airdata/internal/kafka"
	"github.com/Domenick1991/airdata/internal/report"
	"github.com/Domenick1991/airdata/internal/seed"
)

func main() {
	flag.Int64("seed", 0, "dataset seed (overrides config)")
	flag.String("out", "", "output directory (overrides config)")
	flag.Int("flights", 0, "number of flights (overrides config)")
	flag.Int("customers", 0, "number of customers (overrides config)")
	flag.Int("bookings", 0, "number of bookings (overrides config)")
	flag.Parse()

	cfg := loadConfig()
	applyFlags(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	log.Printf("dataset run %s, seed %d", runID, cfg.Dataset.Seed)

	ds := gen.Build(gen.Config{
		Seed:      cfg.Dataset.Seed,
		Flights:   cfg.Dataset.Flights,
		Customers: cfg.Dataset.Customers,
		Bookings:  cfg.Dataset.Bookings,
		Year:      cfg.Dataset.Year,
	})

	if err := export.WriteCSV(cfg.Dataset.OutputDir, ds); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	if cfg.Database.Enabled {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		if err := seed.NewPostgres(pool).Seed(ctx, ds); err != nil {
			log.Fatalf("seed postgres: %v", err)
		}
		pool.Close()
	}

	if cfg.Redis.Enabled {
		warmer := cache.NewRedisCache(cfg.Redis)
		if err := warmer.SetFlights(ctx, ds.Flights); err != nil {
			log.Fatalf("warm flights cache: %v", err)
		}
		_ = warmer.Close()
		log.Printf("warmed flights cache with %d flights", len(ds.Flights))
	}

	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		replay := kafka.NewReplay(producer, cfg.Kafka.BookingEventsTopic, runID)
		if err := replay.Publish(ctx, ds.Bookings); err != nil {
			log.Fatalf("replay booking events: %v", err)
		}
		_ = producer.Close()
	}

	report.Print(os.Stdout, ds, cfg.Dataset.OutputDir)
}

func loadConfig() *config.Config {
	cfgPath := os.Getenv("CONFIG_PATH")
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		// Running without a config file is the common case; every
		// parameter has a built-in default.
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config.Default()
		}
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Dataset.Seed = mustInt64(f.Value.String())
		case "out":
			cfg.Dataset.OutputDir = f.Value.String()
		case "flights":
			cfg.Dataset.Flights = mustInt(f.Value.String())
		case "customers":
			cfg.Dataset.Customers = mustInt(f.Value.String())
		case "bookings":
			cfg.Dataset.Bookings = mustInt(f.Value.String())
		}
	})
}

func mustInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("invalid flag value %q: %v", s, err)
	}
	return v
}

func mustInt(s string) int {
	return int(mustInt64(s))
}
