package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nischitkumar/Mutable/internal/domain"
	"gopkg.in/yaml.v3"
)

// Default is the built-in plan: the three large datasets at rows each
// plus the fixed category table, written to the working directory.
func Default(rows int64) *domain.Plan {
	return &domain.Plan{
		Datasets: []domain.Dataset{
			{Kind: domain.KindCustomers, Rows: rows},
			{Kind: domain.KindOrders, Rows: rows},
			{Kind: domain.KindProducts, Rows: rows},
			{Kind: domain.KindCategories, Rows: 5},
		},
	}
}

func Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p domain.Plan
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}

	return &p, nil
}
