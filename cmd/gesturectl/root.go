package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viant/gesture-knn/config"
	"github.com/viant/gesture-knn/internal/logging"
	"github.com/viant/gesture-knn/vector"
)

// settings carries the persistent flags shared by every subcommand.
type settings struct {
	configPath string
	dataDir    string
	k          int
	maxSamples int
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:           "gesturectl",
		Short:         "k-NN EMG gesture classifier",
		Long:          `gesturectl classifies eight-channel EMG samples against per-class training files (valsN.dat).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&s.dataDir, "data", config.DefaultDataDir, "training data directory")
	flags.IntVar(&s.k, "k", 0, "number of neighbors (overrides config)")
	flags.IntVar(&s.maxSamples, "max-samples", 0, "maximum samples per class (overrides config)")
	flags.StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&s.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newClassifyCmd(s),
		newInspectCmd(s),
		newRecordCmd(s),
		newStreamCmd(s),
		newExportCmd(s),
	)
	return root
}

// resolve merges the config file with any flags set on the command line.
func (s *settings) resolve(cmd *cobra.Command) (config.Config, *logging.Logger, error) {
	cfg := config.Default()
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("data") || s.configPath == "" {
		cfg.DataDir = s.dataDir
	}
	if flags.Changed("k") {
		cfg.K = s.k
	}
	if flags.Changed("max-samples") {
		cfg.MaxSamplesPerClass = s.maxSamples
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = s.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = s.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level), nil
}

func parseSample(fields []string) (vector.Sample, error) {
	var s vector.Sample
	if len(fields) != vector.Channels {
		return s, &vector.LengthError{Want: vector.Channels, Got: len(fields)}
	}
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return s, fmt.Errorf("channel %d: %w", i, err)
		}
		s[i] = uint16(v)
	}
	return s, nil
}
