package load

import (
	"fmt"

	"github.com/nischitkumar/Mutable/internal/domain"
)

type Target interface {
	Connect() error
	Close() error
	CreateTableIfNotExists(table string, columns []domain.Column) error
	TruncateTable(table string) error
	InsertBatch(table string, columns []string, rows [][]interface{}) error
}

func NewTarget(kind, dsn, schema string) (Target, error) {
	switch kind {
	case "sqlite":
		return NewSQLiteTarget(dsn), nil
	case "postgres":
		return NewPostgresTarget(dsn, schema), nil
	default:
		return nil, fmt.Errorf("unsupported target kind: %s", kind)
	}
}

func ensureTable(t Target, table string, columns []domain.Column, mode string) error {
	switch mode {
	case domain.TableModeCreate:
		return t.CreateTableIfNotExists(table, columns)
	case domain.TableModeTruncate:
		if err := t.CreateTableIfNotExists(table, columns); err != nil {
			return err
		}
		return t.TruncateTable(table)
	case domain.TableModeAppend:
		return nil
	default:
		return fmt.Errorf("unknown table mode: %s", mode)
	}
}
