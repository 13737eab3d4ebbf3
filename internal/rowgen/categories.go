package rowgen

import (
	"math/rand"

	"github.com/nischitkumar/Mutable/internal/domain"
)

type category struct {
	id          int64
	name        string
	description string
}

var categoryTable = []category{
	{1, "Electronics", "Electronic devices and accessories"},
	{2, "Clothing", "Apparel and fashion items"},
	{3, "Home Goods", "Household items and furniture"},
	{4, "Books", "Literature and educational materials"},
	{5, "Sports", "Sporting equipment and apparel"},
}

type categorySource struct{}

func (s *categorySource) Kind() domain.Kind { return domain.KindCategories }

func (s *categorySource) Row(rng *rand.Rand, idx int64) []interface{} {
	c := categoryTable[idx]
	return []interface{}{c.id, c.name, c.description}
}
