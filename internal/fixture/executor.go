package fixture

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nischitkumar/Mutable/internal/domain"
	"github.com/nischitkumar/Mutable/internal/logging"
	"github.com/nischitkumar/Mutable/internal/rowgen"
)

type Options struct {
	Names       string
	Compression string
}

type Executor struct {
	logger *logging.Logger
	opts   Options
}

func NewExecutor(logger *logging.Logger, opts Options) *Executor {
	return &Executor{logger: logger, opts: opts}
}

// Execute writes every dataset in the plan. Each dataset draws from its
// own source seeded off the run seed, so runs are reproducible per
// dataset regardless of plan order.
func (e *Executor) Execute(plan *domain.Plan, seed int64) (*domain.Report, error) {
	planHash, err := HashPlan(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to hash plan: %w", err)
	}

	outDir := plan.OutDir
	if outDir == "" {
		outDir = "."
	}

	report := &domain.Report{
		RunID:     uuid.New().String(),
		Seed:      seed,
		PlanHash:  planHash,
		StartedAt: time.Now(),
		Files:     make([]domain.FileStats, 0, len(plan.Datasets)),
	}

	for _, ds := range plan.Datasets {
		startTime := time.Now()

		src, err := rowgen.NewSource(ds.Kind, rowgen.Options{Names: e.opts.Names})
		if err != nil {
			return nil, err
		}

		name, err := CompressedName(ds.FileName(), e.opts.Compression)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(outDir, name)

		rows := rowgen.EffectiveRows(ds.Kind, ds.Rows)
		rng := rand.New(rand.NewSource(rowgen.DatasetSeed(seed, ds.Kind)))

		size, err := writeRows(path, src, rows, rng, e.opts.Compression)
		if err != nil {
			return nil, fmt.Errorf("dataset '%s': %w", ds.Kind, err)
		}

		duration := time.Since(startTime)
		e.logger.Debug("dataset '%s': %d rows -> %s (%.2fs)", ds.Kind, rows, path, duration.Seconds())

		report.Files = append(report.Files, domain.FileStats{
			Kind:            ds.Kind,
			Path:            path,
			Rows:            rows,
			Bytes:           size,
			DurationSeconds: duration.Seconds(),
		})
		report.TotalRows += rows
	}

	report.CompletedAt = time.Now()
	report.DurationSeconds = report.CompletedAt.Sub(report.StartedAt).Seconds()
	e.logger.Debug("wrote %d datasets, %d total rows, %.2fs",
		len(report.Files), report.TotalRows, report.DurationSeconds)

	return report, nil
}
