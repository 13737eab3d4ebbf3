package rowgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nischitkumar/Mutable/internal/domain"
)

var orderDateBase = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

type orderSource struct{}

func (s *orderSource) Kind() domain.Kind { return domain.KindOrders }

func (s *orderSource) Row(rng *rand.Rand, idx int64) []interface{} {
	return []interface{}{
		idx + 1,
		intRange(rng, 1, 1000),
		orderDateBase.AddDate(0, 0, int(intRange(rng, 0, 364))),
		moneyRange(rng, 10, 500),
		fmt.Sprintf("%d Random St", intRange(rng, 100, 999)),
	}
}
