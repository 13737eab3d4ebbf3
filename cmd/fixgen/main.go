package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nischitkumar/Mutable/internal/config"
	"github.com/nischitkumar/Mutable/internal/domain"
	"github.com/nischitkumar/Mutable/internal/fixture"
	"github.com/nischitkumar/Mutable/internal/load"
	"github.com/nischitkumar/Mutable/internal/logging"
	"github.com/nischitkumar/Mutable/internal/plan"
	"github.com/nischitkumar/Mutable/internal/rowgen"
	"github.com/nischitkumar/Mutable/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var logLevel string

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "fixgen",
		Short: "Benchmark fixture generator",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(loadCmd(cfg))
	rootCmd.AddCommand(populateCmd(cfg))
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(planCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		rows     int64
		seed     int64
		hasSeed  bool
		outDir   string
		planPath string
		names    string
		compress string
		manifest bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate CSV fixture files",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)

			var p *domain.Plan
			if planPath != "" {
				loaded, err := plan.Load(planPath)
				if err != nil {
					return err
				}
				p = loaded
			} else {
				p = plan.Default(rows)
			}

			if cmd.Flags().Changed("out-dir") || p.OutDir == "" {
				p.OutDir = outDir
			}

			if err := validation.ValidatePlan(p); err != nil {
				return err
			}

			var runSeed int64
			switch {
			case hasSeed:
				runSeed = seed
			case p.Seed != nil:
				runSeed = *p.Seed
			default:
				runSeed = fixture.NewSeed()
			}

			executor := fixture.NewExecutor(logger, fixture.Options{
				Names:       names,
				Compression: compress,
			})

			report, err := executor.Execute(p, runSeed)
			if err != nil {
				return err
			}

			if manifest {
				if err := fixture.WriteManifest(fixture.ManifestPath(p.OutDir), report); err != nil {
					return fmt.Errorf("failed to write manifest: %w", err)
				}
			}

			fmt.Println("CSV files generated.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&rows, "rows", cfg.Rows, "Rows per dataset for the built-in plan")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	cmd.Flags().StringVar(&outDir, "out-dir", cfg.OutDir, "Output directory")
	cmd.Flags().StringVar(&planPath, "plan", "", "Plan file path")
	cmd.Flags().StringVar(&names, "names", rowgen.NamesSimple, "Customer name style (simple|faker)")
	cmd.Flags().StringVar(&compress, "compress", "", "Compression codec (gzip|zstd)")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Write a run manifest next to the fixtures")
	cmd.Flags().Lookup("seed").NoOptDefVal = "0"
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func loadCmd(cfg *config.Config) *cobra.Command {
	var (
		targetDSN  string
		targetKind string
		schema     string
		mode       string
		dir        string
		planPath   string
		batchSize  int
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load fixture files into a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)

			if targetDSN == "" {
				return fmt.Errorf("--target DSN required")
			}
			if !validation.IsValidMode(mode) {
				return fmt.Errorf("invalid mode: %s", mode)
			}

			target, err := load.NewTarget(targetKind, targetDSN, schema)
			if err != nil {
				return err
			}

			loader := load.NewLoader(logger, batchSize)
			logger.Info("loading fixtures into %s target %s", targetKind, load.RedactDSN(targetDSN))

			var stats *domain.LoadStats
			if planPath != "" {
				p, err := plan.Load(planPath)
				if err != nil {
					return err
				}
				if err := validation.ValidatePlan(p); err != nil {
					return err
				}
				if cmd.Flags().Changed("dir") {
					p.OutDir = dir
				}
				stats, err = loader.LoadPlan(target, p, mode)
				if err != nil {
					return err
				}
			} else {
				stats, err = loader.LoadDir(target, dir, mode)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Loaded %d rows into %d tables (%.2fs)\n",
				stats.TotalRows, len(stats.Tables), stats.DurationSeconds)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetDSN, "target", "", "Target DSN")
	cmd.Flags().StringVar(&targetKind, "target-kind", "sqlite", "Target kind (sqlite|postgres)")
	cmd.Flags().StringVar(&schema, "schema", "", "Postgres schema")
	cmd.Flags().StringVar(&mode, "mode", domain.TableModeCreate, "Table mode (create|truncate|append)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Fixture directory")
	cmd.Flags().StringVar(&planPath, "plan", "", "Plan file path")
	cmd.Flags().IntVar(&batchSize, "batch-size", cfg.BatchSize, "Insert batch size")

	return cmd
}

func populateCmd(cfg *config.Config) *cobra.Command {
	var (
		targetDSN  string
		targetKind string
		schema     string
		mode       string
		rows       int64
		seed       int64
		hasSeed    bool
		names      string
		kinds      []string
		planPath   string
		batchSize  int
	)

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Generate rows straight into a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)

			if targetDSN == "" {
				return fmt.Errorf("--target DSN required")
			}
			if !validation.IsValidMode(mode) {
				return fmt.Errorf("invalid mode: %s", mode)
			}

			var p *domain.Plan
			if planPath != "" {
				loaded, err := plan.Load(planPath)
				if err != nil {
					return err
				}
				p = loaded
			} else {
				p = plan.Default(rows)
				if len(kinds) > 0 {
					selected := make([]domain.Dataset, 0, len(kinds))
					for _, name := range kinds {
						kind, err := domain.ParseKind(name)
						if err != nil {
							return err
						}
						for _, ds := range p.Datasets {
							if ds.Kind == kind {
								selected = append(selected, ds)
							}
						}
					}
					p.Datasets = selected
				}
			}

			if err := validation.ValidatePlan(p); err != nil {
				return err
			}

			var runSeed int64
			switch {
			case hasSeed:
				runSeed = seed
			case p.Seed != nil:
				runSeed = *p.Seed
			default:
				runSeed = fixture.NewSeed()
			}

			target, err := load.NewTarget(targetKind, targetDSN, schema)
			if err != nil {
				return err
			}

			populator := load.NewPopulator(logger, batchSize, names)
			logger.Info("populating %s target %s (seed %d)", targetKind, load.RedactDSN(targetDSN), runSeed)

			stats, err := populator.Populate(target, p, runSeed, mode)
			if err != nil {
				return err
			}

			fmt.Printf("Populated %d rows into %d tables (%.2fs)\n",
				stats.TotalRows, len(stats.Tables), stats.DurationSeconds)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetDSN, "target", "", "Target DSN")
	cmd.Flags().StringVar(&targetKind, "target-kind", "sqlite", "Target kind (sqlite|postgres)")
	cmd.Flags().StringVar(&schema, "schema", "", "Postgres schema")
	cmd.Flags().StringVar(&mode, "mode", domain.TableModeCreate, "Table mode (create|truncate|append)")
	cmd.Flags().Int64Var(&rows, "rows", cfg.Rows, "Rows per dataset")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	cmd.Flags().StringVar(&names, "names", rowgen.NamesSimple, "Customer name style (simple|faker)")
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "Dataset kinds to populate (default all)")
	cmd.Flags().StringVar(&planPath, "plan", "", "Plan file path")
	cmd.Flags().IntVar(&batchSize, "batch-size", cfg.BatchSize, "Insert batch size")
	cmd.Flags().Lookup("seed").NoOptDefVal = "0"
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func kindsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List dataset kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]domain.Schema, 0, len(domain.Kinds()))
			for _, kind := range domain.Kinds() {
				schema, err := domain.SchemaFor(kind)
				if err != nil {
					return err
				}
				list = append(list, schema)
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tTABLE\tCOLUMNS")
			for _, schema := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", schema.Kind, schema.Table, strings.Join(schema.Header(), ","))
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	return cmd
}

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage fixture plans",
	}

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}

			if err := validation.ValidatePlan(p); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Plan '%s' is valid\n", args[0])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Show a plan with defaults resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}

			for i := range p.Datasets {
				p.Datasets[i].File = p.Datasets[i].FileName()
				p.Datasets[i].Table = p.Datasets[i].TableName()
				p.Datasets[i].Rows = rowgen.EffectiveRows(p.Datasets[i].Kind, p.Datasets[i].Rows)
			}

			data, _ := yaml.Marshal(p)
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.AddCommand(validateCmd, showCmd)
	return cmd
}
