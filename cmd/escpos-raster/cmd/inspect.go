package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/thermaldot/escpos-raster/raster"
)

var pbmPath string

func init() {
	inspectCmd.Flags().StringVar(&pbmPath, "pbm", "", "Dump the payload as a binary PBM image")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <stream.bin>",
	Short: "Decode a saved raster command stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		c, err := raster.Parse(data)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", args[0], err)
		}

		fmt.Printf("mode:    %d\n", c.Mode)
		fmt.Printf("width:   %d dots (%d bytes per row)\n", c.Width(), c.BytesPerRow)
		fmt.Printf("height:  %d dots\n", c.Height)
		fmt.Printf("payload: %d bytes\n", len(c.Data))
		if trailing := len(data) - 8 - len(c.Data); trailing > 0 {
			fmt.Printf("trailing: %d bytes\n", trailing)
		}

		if pbmPath != "" {
			f, err := os.Create(pbmPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := c.WritePBM(f); err != nil {
				return err
			}
			log.Infof("wrote %s (%dx%d)", pbmPath, c.Width(), c.Height)
		}
		return nil
	},
}
