package rowgen

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/nischitkumar/Mutable/internal/domain"
)

var cities = []string{"New York", "Los Angeles", "Chicago", "Houston"}

type customerSource struct {
	names string
}

func (s *customerSource) Kind() domain.Kind { return domain.KindCustomers }

func (s *customerSource) Row(rng *rand.Rand, idx int64) []interface{} {
	id := idx + 1
	name := fmt.Sprintf("Customer %d", id)
	if s.names == NamesFaker {
		// faker keeps its own source, so this style is not seed-stable.
		name = faker.Name()
	}
	return []interface{}{
		id,
		name,
		cities[rng.Intn(len(cities))],
		intRange(rng, 18, 70),
		moneyRange(rng, 0, 10000),
	}
}
