package fixture

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/nischitkumar/Mutable/internal/domain"
	"github.com/nischitkumar/Mutable/internal/rowgen"
)

// Generate writes a single fixture file for kind at path, freshly
// seeded and uncompressed. An existing file is truncated first.
func Generate(kind domain.Kind, rows int64, path string) error {
	src, err := rowgen.NewSource(kind, rowgen.Options{})
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(NewSeed()))
	if _, err := writeRows(path, src, rowgen.EffectiveRows(kind, rows), rng, CompressionNone); err != nil {
		return fmt.Errorf("dataset '%s': %w", kind, err)
	}
	return nil
}

func writeRows(path string, src rowgen.Source, rows int64, rng *rand.Rand, codec string) (int64, error) {
	schema, err := domain.SchemaFor(src.Kind())
	if err != nil {
		return 0, err
	}

	sink, err := openSink(path, codec)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(sink)
	if err := w.Write(schema.Header()); err != nil {
		sink.Close()
		return 0, err
	}

	record := make([]string, len(schema.Columns))
	for idx := int64(0); idx < rows; idx++ {
		for i, v := range src.Row(rng, idx) {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			sink.Close()
			return 0, fmt.Errorf("row %d: %w", idx, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		sink.Close()
		return 0, err
	}
	if err := sink.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case time.Time:
		return val.Format("2006-01-02")
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
