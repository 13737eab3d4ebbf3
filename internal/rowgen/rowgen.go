package rowgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nischitkumar/Mutable/internal/domain"
)

const (
	NamesSimple = "simple"
	NamesFaker  = "faker"
)

type Options struct {
	Names string
}

// Source emits one row of column values per call. Values follow the
// column order of the dataset's schema.
type Source interface {
	Kind() domain.Kind
	Row(rng *rand.Rand, idx int64) []interface{}
}

func NewSource(kind domain.Kind, opts Options) (Source, error) {
	names := opts.Names
	if names == "" {
		names = NamesSimple
	}
	if names != NamesSimple && names != NamesFaker {
		return nil, fmt.Errorf("unknown name style: %q", opts.Names)
	}

	switch kind {
	case domain.KindCustomers:
		return &customerSource{names: names}, nil
	case domain.KindOrders:
		return &orderSource{}, nil
	case domain.KindProducts:
		return &productSource{}, nil
	case domain.KindCategories:
		return &categorySource{}, nil
	default:
		return nil, fmt.Errorf("unknown dataset kind: %q", kind)
	}
}

// EffectiveRows returns the number of rows a dataset actually emits.
// The category table is fixed; requested counts are ignored for it.
func EffectiveRows(kind domain.Kind, requested int64) int64 {
	if kind == domain.KindCategories {
		return int64(len(categoryTable))
	}
	return requested
}

// DatasetSeed derives a per-dataset seed so each dataset draws an
// independent stream that is stable across plan order.
func DatasetSeed(seed int64, kind domain.Kind) int64 {
	return seed + int64(len(kind))
}

func intRange(rng *rand.Rand, min, max int) int64 {
	return int64(min + rng.Intn(max-min+1))
}

func moneyRange(rng *rand.Rand, min, max float64) float64 {
	v := min + rng.Float64()*(max-min)
	return math.Round(v*100) / 100
}
