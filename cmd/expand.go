package cmd

import (
	"fmt"

	"expander/pkg/expand"
	"expander/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runExpand builds the expansion config from flags, config file and
// environment, then runs it.
func runExpand(cmd *cobra.Command, args []string) error {
	logger := logging.L()

	threshold, err := resolveThreshold(viper.GetViper())
	if err != nil {
		logger.Error("Invalid threshold", zap.Error(err))
		return fmt.Errorf("invalid threshold: %w", err)
	}

	cfg := expand.Config{
		InputPath:  viper.GetString(ARG_INPUT),
		OutputPath: viper.GetString(ARG_OUTPUT),
		Threshold:  threshold,
	}
	if !viper.GetBool(ARG_QUIET) {
		cfg.Reporter = expand.NewConsoleReporter(cmd.OutOrStdout())
	}

	res, err := expand.Expand(cfg, logger)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	logger.Debug("Expansion result",
		zap.String("outputPath", res.OutputPath),
		zap.Int64("copies", res.Copies),
		zap.Int64("finalSizeBytes", res.FinalSize))
	return nil
}
