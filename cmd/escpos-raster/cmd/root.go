package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/thermaldot/escpos-raster/raster"
)

var (
	verbose    bool
	maxWidth   int
	threshold  int
	mode       int
	output     string
	configPath string
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.Flags().IntVarP(&maxWidth, "max-width", "w", 384, "Maximum width in dots (58mm heads take 384, 80mm take 576)")
	rootCmd.Flags().IntVarP(&threshold, "threshold", "t", 128, "Black/white threshold 0-255, higher prints darker")
	rootCmd.Flags().IntVarP(&mode, "mode", "m", 0, "Raster mode: 0 normal, 1 double width, 2 double height, 3 quadruple")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Write the command stream to a file instead of stdout")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with max_width/threshold defaults")
}

// rootCmd converts one image and writes the raw command stream.
var rootCmd = &cobra.Command{
	Use:           "escpos-raster <image>",
	Short:         "Convert an image to an ESC/POS raster command stream",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		log.Debugf("encoding %s (max-width=%d threshold=%d mode=%d)",
			args[0], cfg.MaxWidth, cfg.Threshold, cfg.Mode)

		data, err := raster.EncodeFile(args[0], cfg)
		if err != nil {
			return fmt.Errorf("encode %s: %w", args[0], err)
		}

		if output == "" {
			// raw bytes on stdout, ready to pipe to the printer
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
		log.Infof("wrote %d bytes to %s", len(data), output)
		return nil
	},
}

// resolveConfig layers the optional TOML file under the command-line
// flags; a flag set explicitly always wins over the file.
func resolveConfig(cmd *cobra.Command) (raster.Config, error) {
	cfg := raster.Config{
		MaxWidth:  maxWidth,
		Threshold: threshold,
		Mode:      raster.Mode(mode),
	}

	if configPath != "" {
		fileCfg, err := loadConfig(configPath, cfg)
		if err != nil {
			return raster.Config{}, err
		}
		cfg = fileCfg
		if cmd.Flags().Changed("max-width") {
			cfg.MaxWidth = maxWidth
		}
		if cmd.Flags().Changed("threshold") {
			cfg.Threshold = threshold
		}
		if cmd.Flags().Changed("mode") {
			cfg.Mode = raster.Mode(mode)
		}
	}

	if clamped := raster.ClampThreshold(cfg.Threshold); clamped != cfg.Threshold {
		log.Warnf("threshold %d out of range, using %d", cfg.Threshold, clamped)
		cfg.Threshold = clamped
	}
	return cfg, nil
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
