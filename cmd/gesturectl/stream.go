package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/classifier"
)

// writeGestureFile replaces path with "<pose>,<confidence>".
func writeGestureFile(path string, pose int, confidence float32) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%d,%.2f", pose, confidence)), 0o644)
}

func newStreamCmd(s *settings) *cobra.Command {
	var histLen int
	var gestureFile string
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Classify a stream of samples and report pose changes",
		Long: `Reads one sample per line from stdin (eight whitespace-separated values),
classifies each one and smooths the labels over a sliding history. A line is
printed whenever the smoothed pose changes. With --gesture-file the current
pose is also written to a file as "<pose>,<confidence>".`,
		Example: `  emg-reader | gesturectl stream --data ./data
  emg-reader | gesturectl stream --history 15 --gesture-file gesture.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := classifier.New(cfg.K, cfg.MaxSamplesPerClass, classifier.WithLogger(logger.WithK(cfg.K)))
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context(), cfg.DataDir); err != nil {
				return err
			}
			if gestureFile != "" {
				if err := writeGestureFile(gestureFile, classifier.NoPose, 0); err != nil {
					return err
				}
			}

			smoother := classifier.NewSmoother(histLen)
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			line, changes := 0, 0
			for scanner.Scan() {
				line++
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}
				sample, err := parseSample(fields)
				if err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
				pose, confidence, changed := smoother.Observe(c.Classify(sample))
				if !changed {
					continue
				}
				changes++
				logger.Debug("pose changed", "line", line, "pose", pose, "confidence", confidence)
				fmt.Fprintf(out, "line=%d pose=%d confidence=%.2f\n", line, pose, confidence)
				if gestureFile != "" {
					if err := writeGestureFile(gestureFile, pose, confidence); err != nil {
						return err
					}
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			logger.Info("stream finished", "lines", line, "changes", changes)
			return nil
		},
	}
	cmd.Flags().IntVar(&histLen, "history", classifier.DefaultHistoryLen, "number of recent labels voted over")
	cmd.Flags().StringVar(&gestureFile, "gesture-file", "", "file updated with the current pose")
	return cmd
}
