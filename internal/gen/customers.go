package gen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Domenick1991/airdata/internal/domain"
)

var HomeCities = []string{"NYC", "LAX", "CHI", "MIA", "BOS"}

const (
	minAge    = 18
	maxAge    = 69
	minIncome = 25000

	incomeMean  = 60000
	incomeStdev = 20000

	// High earners past thirty book business travel more often.
	businessIncomeCutoff = 80000
	businessAgeCutoff    = 30
	businessProbHigh     = 0.6
	businessProbLow      = 0.2
)

// Customers generates n customer records. Draw order per record: age,
// income, business flag, home city.
func Customers(r *rand.Rand, n int) []domain.Customer {
	customers := make([]domain.Customer, 0, n)

	for i := 0; i < n; i++ {
		age := minAge + r.Intn(maxAge-minAge+1)
		income := int(math.Round(normalFloored(r, incomeMean, incomeStdev, minIncome)))

		p := businessProbLow
		if income > businessIncomeCutoff && age > businessAgeCutoff {
			p = businessProbHigh
		}
		isBusiness := bernoulli(r, p)

		customers = append(customers, domain.Customer{
			ID:         fmt.Sprintf("CU%05d", i+1),
			Age:        age,
			Income:     income,
			IsBusiness: isBusiness,
			HomeCity:   choice(r, HomeCities),
		})
	}
	return customers
}
