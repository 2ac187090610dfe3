package cmd

import (
	"fmt"
	"strings"

	"expander/pkg/expand"
	"expander/pkg/logging"
	"expander/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ARG_CONFIG    = "config"
	ARG_DEBUG     = "debug"
	ARG_INPUT     = "input"
	ARG_OUTPUT    = "output"
	ARG_QUIET     = "quiet"
	ARG_SIZE_GB   = "size-gb"
	ARG_SIZE_GIB  = "size-gib"
	ARG_THRESHOLD = "threshold"
)

const appName = "expander"

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "expander",
	Short: "Expander grows a file by duplicating a smaller one",
	Long: `Expander reads a source file and writes its content to an output file
repeatedly until the output reaches a target size. The target may be given
in bytes, as a human readable size, or in decimal GB / binary GiB.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		if err := readConfigFile(); err != nil {
			return err
		}
		if err := logging.Setup(viper.GetBool(ARG_DEBUG), appName, version.Get().Short()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runExpand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().String(ARG_CONFIG, "", "Path to a config file (yaml, toml or json)")
	RootCmd.PersistentFlags().Bool(ARG_DEBUG, false, "Enables development logging at debug level")

	RootCmd.Flags().StringP(ARG_INPUT, "i", "Input.txt", "Source file whose content is duplicated")
	RootCmd.Flags().StringP(ARG_OUTPUT, "o", "input.txt", "Destination file, overwritten if present")
	RootCmd.Flags().StringP(ARG_THRESHOLD, "t", "1.28GB", "Target size in bytes or as a human readable size (1.28GB, 1GiB)")
	RootCmd.Flags().Float64(ARG_SIZE_GB, 0, "Target size in decimal gigabytes (10^9 bytes), overrides --threshold")
	RootCmd.Flags().Float64(ARG_SIZE_GIB, 0, "Target size in binary gibibytes (2^30 bytes), overrides --threshold")
	RootCmd.Flags().BoolP(ARG_QUIET, "q", false, "Suppress progress output")
	RootCmd.MarkFlagsMutuallyExclusive(ARG_SIZE_GB, ARG_SIZE_GIB)
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(appName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// readConfigFile loads the file named by --config, if any.
func readConfigFile() error {
	path := viper.GetString(ARG_CONFIG)
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error while reading config file %s: %w", path, err)
	}
	return nil
}

func bindFlags(cmd *cobra.Command) error {
	flagSets := []*pflag.FlagSet{
		cmd.PersistentFlags(),
		cmd.Flags(),
	}
	for _, flags := range flagSets {
		if err := viper.BindPFlags(flags); err != nil {
			return fmt.Errorf("error while binding flags: %w", err)
		}
	}

	return nil
}

// resolveThreshold picks the target size from the decimal, binary or generic
// size settings in v.
func resolveThreshold(v *viper.Viper) (expand.Threshold, error) {
	gb := v.GetFloat64(ARG_SIZE_GB)
	gib := v.GetFloat64(ARG_SIZE_GIB)

	switch {
	case gb < 0 || gib < 0:
		return 0, fmt.Errorf("--%s and --%s must not be negative: %w", ARG_SIZE_GB, ARG_SIZE_GIB, expand.ErrInvalidThreshold)
	case gb > 0 && gib > 0:
		return 0, fmt.Errorf("--%s and --%s are mutually exclusive", ARG_SIZE_GB, ARG_SIZE_GIB)
	case gb > 0:
		return expand.GB(gb)
	case gib > 0:
		return expand.GiB(gib)
	}
	return expand.ParseThreshold(v.GetString(ARG_THRESHOLD))
}
