package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/parallax/background"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "parallax",
		Short:         "Procedural animated starfield and nebula background",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: configs/config.yaml)")
	pf.Bool("debug", false, "Write debug logs to logs/parallax.log")
	pf.StringP("variant", "v", string(background.VariantStarfield), "Background variant: starfield | glow | orbit")
	pf.Int("stars", 0, "Number of stars (unset uses the variant default)")
	pf.Int("blobs", 0, "Number of nebula blobs or orbs (unset uses the variant default)")
	pf.String("resize", string(background.ResizeReset), "Resize policy: reset | stretch")
	pf.Uint64("seed", 0, "Random seed, 0 seeds from the clock")

	rootCmd.AddCommand(newRunCmd(), newSnapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
