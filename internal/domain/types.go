package domain

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindCustomers  Kind = "customers"
	KindOrders     Kind = "orders"
	KindProducts   Kind = "products"
	KindCategories Kind = "categories"
)

func Kinds() []Kind {
	return []Kind{KindCustomers, KindOrders, KindProducts, KindCategories}
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCustomers, KindOrders, KindProducts, KindCategories:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown dataset kind: %q", s)
	}
}

type ColumnType string

const (
	ColumnTypeInt     ColumnType = "int"
	ColumnTypeDecimal ColumnType = "decimal"
	ColumnTypeString  ColumnType = "string"
	ColumnTypeDate    ColumnType = "date"
)

type Column struct {
	Name string     `json:"name" yaml:"name"`
	Type ColumnType `json:"type" yaml:"type"`
}

type Schema struct {
	Kind    Kind     `json:"kind" yaml:"kind"`
	Table   string   `json:"table" yaml:"table"`
	Columns []Column `json:"columns" yaml:"columns"`
}

func (s Schema) Header() []string {
	header := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		header[i] = col.Name
	}
	return header
}

var schemas = map[Kind]Schema{
	KindCustomers: {
		Kind:  KindCustomers,
		Table: "customers",
		Columns: []Column{
			{Name: "customer_id", Type: ColumnTypeInt},
			{Name: "name", Type: ColumnTypeString},
			{Name: "city", Type: ColumnTypeString},
			{Name: "age", Type: ColumnTypeInt},
			{Name: "account_balance", Type: ColumnTypeDecimal},
		},
	},
	KindOrders: {
		Kind:  KindOrders,
		Table: "orders",
		Columns: []Column{
			{Name: "order_id", Type: ColumnTypeInt},
			{Name: "customer_id", Type: ColumnTypeInt},
			{Name: "order_date", Type: ColumnTypeDate},
			{Name: "amount", Type: ColumnTypeDecimal},
			{Name: "shipping_address", Type: ColumnTypeString},
		},
	},
	KindProducts: {
		Kind:  KindProducts,
		Table: "products",
		Columns: []Column{
			{Name: "product_id", Type: ColumnTypeString},
			{Name: "product_name", Type: ColumnTypeString},
			{Name: "category", Type: ColumnTypeString},
			{Name: "price", Type: ColumnTypeDecimal},
			{Name: "inventory", Type: ColumnTypeInt},
		},
	},
	KindCategories: {
		Kind:  KindCategories,
		Table: "categories",
		Columns: []Column{
			{Name: "category_id", Type: ColumnTypeInt},
			{Name: "category_name", Type: ColumnTypeString},
			{Name: "description", Type: ColumnTypeString},
		},
	},
}

func SchemaFor(kind Kind) (Schema, error) {
	schema, ok := schemas[kind]
	if !ok {
		return Schema{}, fmt.Errorf("unknown dataset kind: %q", kind)
	}
	return schema, nil
}

type Plan struct {
	Seed     *int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	OutDir   string    `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

type Dataset struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Rows  int64  `json:"rows" yaml:"rows"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Table string `json:"table,omitempty" yaml:"table,omitempty"`
}

func (d Dataset) FileName() string {
	if d.File != "" {
		return d.File
	}
	return string(d.Kind) + ".csv"
}

func (d Dataset) TableName() string {
	if d.Table != "" {
		return d.Table
	}
	return string(d.Kind)
}

type Report struct {
	RunID           string      `json:"run_id"`
	Seed            int64       `json:"seed"`
	PlanHash        string      `json:"plan_hash"`
	StartedAt       time.Time   `json:"started_at"`
	CompletedAt     time.Time   `json:"completed_at"`
	TotalRows       int64       `json:"total_rows"`
	DurationSeconds float64     `json:"duration_seconds"`
	Files           []FileStats `json:"files"`
}

type FileStats struct {
	Kind            Kind    `json:"kind"`
	Path            string  `json:"path"`
	Rows            int64   `json:"rows"`
	Bytes           int64   `json:"bytes"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type LoadStats struct {
	TotalRows       int64        `json:"total_rows"`
	DurationSeconds float64      `json:"duration_seconds"`
	Tables          []TableStats `json:"tables"`
}

type TableStats struct {
	Kind            Kind    `json:"kind"`
	Table           string  `json:"table"`
	Rows            int64   `json:"rows"`
	DurationSeconds float64 `json:"duration_seconds"`
}

const (
	TableModeCreate   = "create"
	TableModeTruncate = "truncate"
	TableModeAppend   = "append"
)
