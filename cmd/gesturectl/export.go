package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/dataset"
	"github.com/viant/gesture-knn/engine"
)

func newExportCmd(s *settings) *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Rewrite the class files from the SQLite capture log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, store, err := engine.OpenSampleStore(ctx, dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			rec, err := dataset.NewRecorder(cfg.DataDir)
			if err != nil {
				return err
			}
			if err := rec.Reset(); err != nil {
				return err
			}
			for class := 0; class < dataset.NumClasses; class++ {
				samples, err := store.Samples(ctx, class)
				if err != nil {
					return err
				}
				for _, sample := range samples {
					if err := rec.Store(class, sample); err != nil {
						return err
					}
				}
				if err := rec.Flush(class); err != nil {
					return err
				}
			}
			counts := rec.Counts()
			logger.Info("capture log exported", "data_dir", cfg.DataDir, "counts", counts[:])
			fmt.Fprintf(cmd.OutOrStdout(), "exported %v\n", counts)
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "db", "", "SQLite capture log")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
