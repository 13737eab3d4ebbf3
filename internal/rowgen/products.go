package rowgen

import (
	"fmt"
	"math/rand"

	"github.com/nischitkumar/Mutable/internal/domain"
)

type productSource struct{}

func (s *productSource) Kind() domain.Kind { return domain.KindProducts }

func (s *productSource) Row(rng *rand.Rand, idx int64) []interface{} {
	id := idx + 1
	return []interface{}{
		fmt.Sprintf("P%d", id),
		fmt.Sprintf("Product %d", id),
		categoryTable[rng.Intn(len(categoryTable))].name,
		moneyRange(rng, 5, 200),
		intRange(rng, 10, 500),
	}
}
