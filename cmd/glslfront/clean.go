package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glslfront/internal/config"
	"glslfront/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove the translated module cache",
	Long:  "Remove every cached module. The cache directory comes from the project file found above path, or the user cache directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	base := "."
	if len(args) > 0 && args[0] != "" {
		base = args[0]
	}
	cfg, err := config.Discover(base)
	if err != nil {
		return err
	}
	// [cache].enabled is ignored so a disabled cache can still be wiped.
	var cache *driver.DiskCache
	if dir := cfg.CacheDir(); dir != "" {
		cache, err = driver.NewDiskCache(dir)
	} else {
		cache, err = driver.OpenDiskCache("glslfront")
	}
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stdout, "removed %s\n", cache.Dir())
	}
	return nil
}
