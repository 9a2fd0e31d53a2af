package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/classifier"
)

type classifyResult struct {
	Label      int             `json:"label"`
	Confidence float32         `json:"confidence"`
	Votes      []int           `json:"votes,omitempty"`
	Neighbors  []neighborEntry `json:"neighbors,omitempty"`
}

type neighborEntry struct {
	Index    int     `json:"index"`
	Label    int     `json:"label"`
	Distance float64 `json:"distance"`
}

func newClassifyCmd(s *settings) *cobra.Command {
	var explain, asJSON bool
	cmd := &cobra.Command{
		Use:   "classify v0 v1 v2 v3 v4 v5 v6 v7",
		Short: "Classify one eight-channel sample",
		Example: `  gesturectl classify --data ./data 120 98 340 12 55 70 81 9
  gesturectl classify --k 15 --explain --json 120 98 340 12 55 70 81 9`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseSample(args)
			if err != nil {
				return err
			}
			cfg, logger, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := classifier.New(cfg.K, cfg.MaxSamplesPerClass, classifier.WithLogger(logger.WithK(cfg.K)))
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context(), cfg.DataDir); err != nil {
				logger.Warn("classifying with untrained model", "error", err)
			}

			p := c.Predict(query)
			result := classifyResult{Label: p.Label, Confidence: p.Confidence}
			if explain {
				result.Votes = p.Votes[:]
				for _, n := range p.Neighbors {
					result.Neighbors = append(result.Neighbors, neighborEntry{Index: n.Index, Label: n.Label, Distance: n.Distance})
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprintf(out, "label=%d confidence=%.2f\n", result.Label, result.Confidence)
			if explain {
				fmt.Fprintf(out, "votes=%v\n", result.Votes)
				for _, n := range result.Neighbors {
					fmt.Fprintf(out, "neighbor index=%d label=%d distance=%.0f\n", n.Index, n.Label, n.Distance)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print votes and retained neighbors")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
