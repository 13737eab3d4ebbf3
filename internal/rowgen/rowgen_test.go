package rowgen

import (
	"fmt"
	"math/rand"
	"reflect"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/nischitkumar/Mutable/internal/domain"
)

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// twoDecimal reports whether v survives the two-decimal rendering used
// for money columns.
func twoDecimal(v float64) bool {
	back, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return err == nil && back == v
}

func TestCustomerRows(t *testing.T) {
	src, err := NewSource(domain.KindCustomers, Options{})
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	for idx := int64(0); idx < 500; idx++ {
		row := src.Row(rng, idx)
		if len(row) != 5 {
			t.Fatalf("row width: got %d", len(row))
		}
		if row[0].(int64) != idx+1 {
			t.Fatalf("id at %d: got %v", idx, row[0])
		}
		if want := fmt.Sprintf("Customer %d", idx+1); row[1].(string) != want {
			t.Fatalf("name at %d: got %v, want %q", idx, row[1], want)
		}
		if !containsString(cities, row[2].(string)) {
			t.Fatalf("city out of domain: %v", row[2])
		}
		if age := row[3].(int64); age < 18 || age > 70 {
			t.Fatalf("age out of range: %d", age)
		}
		balance := row[4].(float64)
		if balance < 0 || balance > 10000 {
			t.Fatalf("balance out of range: %v", balance)
		}
		if !twoDecimal(balance) {
			t.Fatalf("balance not two-decimal: %v", balance)
		}
	}
}

func TestOrderRows(t *testing.T) {
	src, err := NewSource(domain.KindOrders, Options{})
	if err != nil {
		t.Fatal(err)
	}

	lastDay := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	addrRe := regexp.MustCompile(`^[1-9][0-9]{2} Random St$`)

	rng := rand.New(rand.NewSource(2))
	for idx := int64(0); idx < 500; idx++ {
		row := src.Row(rng, idx)
		if row[0].(int64) != idx+1 {
			t.Fatalf("id at %d: got %v", idx, row[0])
		}
		if customerID := row[1].(int64); customerID < 1 || customerID > 1000 {
			t.Fatalf("customer_id out of range: %d", customerID)
		}
		date := row[2].(time.Time)
		if date.Before(orderDateBase) || date.After(lastDay) {
			t.Fatalf("order_date out of range: %v", date)
		}
		amount := row[3].(float64)
		if amount < 10 || amount > 500 {
			t.Fatalf("amount out of range: %v", amount)
		}
		if !twoDecimal(amount) {
			t.Fatalf("amount not two-decimal: %v", amount)
		}
		if addr := row[4].(string); !addrRe.MatchString(addr) {
			t.Fatalf("bad shipping_address: %q", addr)
		}
	}
}

func TestProductRows(t *testing.T) {
	src, err := NewSource(domain.KindProducts, Options{})
	if err != nil {
		t.Fatal(err)
	}

	categories := make([]string, len(categoryTable))
	for i, c := range categoryTable {
		categories[i] = c.name
	}

	rng := rand.New(rand.NewSource(3))
	for idx := int64(0); idx < 500; idx++ {
		row := src.Row(rng, idx)
		if want := fmt.Sprintf("P%d", idx+1); row[0].(string) != want {
			t.Fatalf("id at %d: got %v, want %q", idx, row[0], want)
		}
		if want := fmt.Sprintf("Product %d", idx+1); row[1].(string) != want {
			t.Fatalf("name at %d: got %v, want %q", idx, row[1], want)
		}
		if !containsString(categories, row[2].(string)) {
			t.Fatalf("category out of domain: %v", row[2])
		}
		price := row[3].(float64)
		if price < 5 || price > 200 {
			t.Fatalf("price out of range: %v", price)
		}
		if !twoDecimal(price) {
			t.Fatalf("price not two-decimal: %v", price)
		}
		if inv := row[4].(int64); inv < 10 || inv > 500 {
			t.Fatalf("inventory out of range: %d", inv)
		}
	}
}

func TestCategoryRows(t *testing.T) {
	src, err := NewSource(domain.KindCategories, Options{})
	if err != nil {
		t.Fatal(err)
	}

	want := [][]interface{}{
		{int64(1), "Electronics", "Electronic devices and accessories"},
		{int64(2), "Clothing", "Apparel and fashion items"},
		{int64(3), "Home Goods", "Household items and furniture"},
		{int64(4), "Books", "Literature and educational materials"},
		{int64(5), "Sports", "Sporting equipment and apparel"},
	}

	rng := rand.New(rand.NewSource(4))
	for idx, wantRow := range want {
		got := src.Row(rng, int64(idx))
		if !reflect.DeepEqual(got, wantRow) {
			t.Fatalf("category row %d: got %v, want %v", idx, got, wantRow)
		}
	}

	if n := EffectiveRows(domain.KindCategories, 90000); n != 5 {
		t.Fatalf("EffectiveRows for categories: got %d", n)
	}
	if n := EffectiveRows(domain.KindOrders, 90000); n != 90000 {
		t.Fatalf("EffectiveRows for orders: got %d", n)
	}
}

func TestDeterministicRows(t *testing.T) {
	for _, kind := range domain.Kinds() {
		src, err := NewSource(kind, Options{})
		if err != nil {
			t.Fatal(err)
		}

		a := rand.New(rand.NewSource(99))
		b := rand.New(rand.NewSource(99))
		for idx := int64(0); idx < EffectiveRows(kind, 50); idx++ {
			if !reflect.DeepEqual(src.Row(a, idx), src.Row(b, idx)) {
				t.Fatalf("kind %s row %d differs across equal seeds", kind, idx)
			}
		}
	}
}

func TestFakerNames(t *testing.T) {
	src, err := NewSource(domain.KindCustomers, Options{Names: NamesFaker})
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(5))
	row := src.Row(rng, 0)
	if row[1].(string) == "" {
		t.Fatal("faker name should not be empty")
	}
	if !containsString(cities, row[2].(string)) {
		t.Fatalf("city out of domain with faker names: %v", row[2])
	}
}

func TestNewSourceErrors(t *testing.T) {
	if _, err := NewSource("users", Options{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if _, err := NewSource(domain.KindCustomers, Options{Names: "fancy"}); err == nil {
		t.Fatal("expected error for unknown name style")
	}
}

func TestDatasetSeedsDistinct(t *testing.T) {
	seen := make(map[int64]domain.Kind)
	for _, kind := range domain.Kinds() {
		s := DatasetSeed(7, kind)
		if other, ok := seen[s]; ok {
			t.Fatalf("kinds %s and %s share seed %d", kind, other, s)
		}
		seen[s] = kind
	}
}
