package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/classifier"
)

func newInspectCmd(s *settings) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the training directory and print per-class statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := classifier.New(cfg.K, cfg.MaxSamplesPerClass, classifier.WithLogger(logger))
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context(), cfg.DataDir); err != nil {
				return err
			}
			summary := c.Summary()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLASS\tSAMPLES\tSPREAD\tSTDDEV\tCENTROID")
			for _, cs := range summary {
				fmt.Fprintf(w, "%d\t%d\t%.1f\t%.1f\t%.0f\n", cs.Class, cs.Count, cs.MeanSpread, cs.StdSpread, cs.Centroid)
			}
			fmt.Fprintf(w, "total\t%d\t\t\t\n", c.Len())
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
