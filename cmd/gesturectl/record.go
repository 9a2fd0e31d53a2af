package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/dataset"
	"github.com/viant/gesture-knn/engine"
	"github.com/viant/gesture-knn/vector"
)

func newRecordCmd(s *settings) *cobra.Command {
	var class int
	var dsn string
	var reset bool
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Append samples read from stdin to a class file",
		Long: `Reads one sample per line from stdin (eight whitespace-separated values)
and appends it to valsN.dat for the selected class. With --db the samples are
also written to the SQLite capture log.`,
		Example: `  emg-reader | gesturectl record --class 3
  gesturectl record --class 0 --db capture.sqlite < rest.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if class < 0 || class >= dataset.NumClasses {
				return fmt.Errorf("class %d out of range [0, %d)", class, dataset.NumClasses)
			}
			cfg, logger, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var store *vector.SQLiteStore
			if dsn != "" {
				var db *sql.DB
				if db, store, err = engine.OpenSampleStore(ctx, dsn); err != nil {
					return err
				}
				defer db.Close()
			}
			rec, err := dataset.NewRecorder(cfg.DataDir)
			if err != nil {
				return err
			}
			if reset {
				if err := rec.Reset(); err != nil {
					return err
				}
				if store != nil {
					if err := store.Clear(ctx); err != nil {
						return err
					}
				}
			}

			// Samples accepted before a failure are flushed to the class file
			// by Close, so they are mirrored to the capture log as well.
			var samples []vector.Sample
			finish := func(cause error) error {
				if err := rec.Close(); err != nil && cause == nil {
					cause = err
				}
				if store != nil && len(samples) > 0 {
					if _, err := store.AddSamples(ctx, class, samples); err != nil && cause == nil {
						cause = err
					}
				}
				return cause
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			line := 0
			for scanner.Scan() {
				line++
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}
				sample, err := parseSample(fields)
				if err != nil {
					return finish(fmt.Errorf("line %d: %w", line, err))
				}
				if err := rec.Store(class, sample); err != nil {
					return finish(err)
				}
				samples = append(samples, sample)
			}
			if err := finish(scanner.Err()); err != nil {
				return err
			}
			logger.Info("samples recorded", "class", class, "added", len(samples), "total", rec.Count(class))
			fmt.Fprintf(cmd.OutOrStdout(), "class=%d added=%d total=%d\n", class, len(samples), rec.Count(class))
			return nil
		},
	}
	cmd.Flags().IntVar(&class, "class", -1, "gesture class 0-9")
	cmd.Flags().StringVar(&dsn, "db", "", "SQLite capture log to mirror samples into")
	cmd.Flags().BoolVar(&reset, "reset", false, "truncate every class file (and the --db log) before recording")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}
