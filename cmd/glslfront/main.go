package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glslfront/internal/trace"
	"glslfront/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "glslfront",
	Short:         "GLSL front-end: tokens in, typed IR out",
	Long:          `glslfront tokenizes and translates GLSL 440-460 core shaders into an arena-based typed IR`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code without printing anything extra.
// Commands return it when diagnostics were already rendered.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	registerPersistentFlags(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func registerPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace mode (stream|ring|both); ring prints recent events when a file fails")
	flags.Int("trace-ring-size", trace.DefaultRingSize, "events kept by the ring tracer")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
