package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/nischitkumar/Mutable/internal/domain"
	"github.com/nischitkumar/Mutable/internal/logging"
)

type Loader struct {
	logger    *logging.Logger
	batchSize int
}

func NewLoader(logger *logging.Logger, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Loader{logger: logger, batchSize: batchSize}
}

// LoadPlan loads the fixture file of every dataset in the plan into
// the target. Files may be plain, gzip or zstd compressed.
func (l *Loader) LoadPlan(target Target, plan *domain.Plan, mode string) (*domain.LoadStats, error) {
	if err := target.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	dir := plan.OutDir
	if dir == "" {
		dir = "."
	}

	stats := &domain.LoadStats{Tables: make([]domain.TableStats, 0, len(plan.Datasets))}
	startTime := time.Now()

	for _, ds := range plan.Datasets {
		path, err := findDatasetFile(dir, ds.FileName())
		if err != nil {
			return nil, fmt.Errorf("dataset '%s': %w", ds.Kind, err)
		}

		tableStart := time.Now()
		rows, err := l.loadFile(target, ds, path, mode)
		if err != nil {
			return nil, fmt.Errorf("dataset '%s': %w", ds.Kind, err)
		}

		l.logger.Info("loaded %d rows from %s into %s", rows, path, ds.TableName())
		stats.Tables = append(stats.Tables, domain.TableStats{
			Kind:            ds.Kind,
			Table:           ds.TableName(),
			Rows:            rows,
			DurationSeconds: time.Since(tableStart).Seconds(),
		})
		stats.TotalRows += rows
	}

	stats.DurationSeconds = time.Since(startTime).Seconds()
	return stats, nil
}

// LoadDir loads the standard fixture files present in dir, skipping
// kinds that have no file there.
func (l *Loader) LoadDir(target Target, dir string, mode string) (*domain.LoadStats, error) {
	datasets := make([]domain.Dataset, 0, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		ds := domain.Dataset{Kind: kind}
		if _, err := findDatasetFile(dir, ds.FileName()); err != nil {
			continue
		}
		datasets = append(datasets, ds)
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("no fixture files found in %s", dir)
	}

	return l.LoadPlan(target, &domain.Plan{OutDir: dir, Datasets: datasets}, mode)
}

func (l *Loader) loadFile(target Target, ds domain.Dataset, path string, mode string) (int64, error) {
	schema, err := domain.SchemaFor(ds.Kind)
	if err != nil {
		return 0, err
	}

	if err := ensureTable(target, ds.TableName(), schema.Columns, mode); err != nil {
		return 0, err
	}

	r, err := openReader(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	if !equalHeader(header, schema.Header()) {
		return 0, fmt.Errorf("header mismatch: got %v, want %v", header, schema.Header())
	}

	columns := schema.Header()
	batch := make([][]interface{}, 0, l.batchSize)
	var total int64

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}

		row, err := parseRecord(record, schema.Columns)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", total+1, err)
		}

		batch = append(batch, row)
		total++

		if len(batch) >= l.batchSize {
			if err := target.InsertBatch(ds.TableName(), columns, batch); err != nil {
				return 0, fmt.Errorf("failed to insert batch: %w", err)
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := target.InsertBatch(ds.TableName(), columns, batch); err != nil {
			return 0, fmt.Errorf("failed to insert final batch: %w", err)
		}
	}

	return total, nil
}

func parseRecord(record []string, columns []domain.Column) ([]interface{}, error) {
	row := make([]interface{}, len(columns))
	for i, col := range columns {
		v, err := parseValue(record[i], col.Type)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Name, err)
		}
		row[i] = v
	}
	return row, nil
}

func parseValue(s string, colType domain.ColumnType) (interface{}, error) {
	switch colType {
	case domain.ColumnTypeInt:
		return strconv.ParseInt(s, 10, 64)
	case domain.ColumnTypeDecimal:
		return strconv.ParseFloat(s, 64)
	case domain.ColumnTypeDate:
		return time.Parse("2006-01-02", s)
	case domain.ColumnTypeString:
		return s, nil
	default:
		return nil, fmt.Errorf("unknown column type: %s", colType)
	}
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func findDatasetFile(dir, name string) (string, error) {
	for _, candidate := range []string{name, name + ".gz", name + ".zst"} {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("fixture file not found: %s", filepath.Join(dir, name))
}

func openReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressedFile{file: f, dec: gz}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressedFile{file: f, dec: zr.IOReadCloser()}, nil
	default:
		return f, nil
	}
}

type decompressedFile struct {
	file *os.File
	dec  io.ReadCloser
}

func (r *decompressedFile) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *decompressedFile) Close() error {
	err := r.dec.Close()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}
