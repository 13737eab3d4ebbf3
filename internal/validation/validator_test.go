package validation

import (
	"strings"
	"testing"

	"github.com/nischitkumar/Mutable/internal/domain"
)

func TestIsValidIdentifier(t *testing.T) {
	ok := []string{"a", "A", "_a", "a1", "a_b2", "snake_case_123"}
	bad := []string{"", "1a", "a-b", "a b", "a;b", "a\"b", "a.b", "a/b", "a--", "select", "from", "order", "table", "group", "user", "returning"}

	for _, s := range ok {
		if !IsValidIdentifier(s) {
			t.Fatalf("expected valid: %q", s)
		}
	}
	for _, s := range bad {
		if IsValidIdentifier(s) {
			t.Fatalf("expected invalid: %q", s)
		}
	}
}

func TestIsValidMode(t *testing.T) {
	if !IsValidMode("create") || !IsValidMode("truncate") || !IsValidMode("append") {
		t.Fatal("expected valid table modes")
	}
	if IsValidMode("") || IsValidMode("replace") || IsValidMode("foo") {
		t.Fatal("expected invalid mode")
	}
}

func TestValidatePlan(t *testing.T) {
	valid := &domain.Plan{
		Datasets: []domain.Dataset{
			{Kind: domain.KindCustomers, Rows: 100},
			{Kind: domain.KindOrders, Rows: 0},
			{Kind: domain.KindCategories, Rows: 5, File: "cats.csv", Table: "category_dim"},
		},
	}
	if err := ValidatePlan(valid); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}

	cases := []struct {
		name string
		plan *domain.Plan
		want string
	}{
		{
			name: "empty",
			plan: &domain.Plan{},
			want: "at least one dataset",
		},
		{
			name: "unknown kind",
			plan: &domain.Plan{Datasets: []domain.Dataset{{Kind: "users", Rows: 1}}},
			want: "unknown dataset kind",
		},
		{
			name: "duplicate kind",
			plan: &domain.Plan{Datasets: []domain.Dataset{
				{Kind: domain.KindOrders, Rows: 1},
				{Kind: domain.KindOrders, Rows: 2},
			}},
			want: "duplicate dataset kind",
		},
		{
			name: "negative rows",
			plan: &domain.Plan{Datasets: []domain.Dataset{{Kind: domain.KindOrders, Rows: -1}}},
			want: "rows must be >= 0",
		},
		{
			name: "file with path",
			plan: &domain.Plan{Datasets: []domain.Dataset{{Kind: domain.KindOrders, Rows: 1, File: "sub/orders.csv"}}},
			want: "bare file name",
		},
		{
			name: "reserved table name",
			plan: &domain.Plan{Datasets: []domain.Dataset{{Kind: domain.KindOrders, Rows: 1, Table: "order"}}},
			want: "invalid table identifier",
		},
		{
			name: "malformed table name",
			plan: &domain.Plan{Datasets: []domain.Dataset{{Kind: domain.KindOrders, Rows: 1, Table: "or;ders"}}},
			want: "invalid table identifier",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePlan(tc.plan)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
