// Command letclone expands a comma-separated clone list into "let" binding
// statements, for use as a codegen filter.
//
// Usage:
//
//	letclone -c 'data.field1, mut var'
//	letclone clones.txt
//	echo 'a.b, c' | letclone
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/deepnoodle-ai/letclone"
	"github.com/deepnoodle-ai/letclone/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "letclone [file]",
		Short:         "Expand a clone list into let binding statements",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExpand,
	}
	cmd.Flags().StringP("code", "c", "", "Clone list to expand")
	cmd.Flags().String("clone-method", letclone.DefaultCloneMethod, "Method invoked to duplicate each value")
	cmd.Flags().Bool("no-color", false, "Disable colored error output")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	viper.SetEnvPrefix("letclone")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("code", cmd.Flags().Lookup("code"))
	_ = viper.BindPFlag("clone-method", cmd.Flags().Lookup("clone-method"))
	_ = viper.BindPFlag("no-color", cmd.Flags().Lookup("no-color"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindEnv("no-color", "NO_COLOR")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("letclone %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func runExpand(cmd *cobra.Command, args []string) error {
	logger := newLogger(viper.GetBool("verbose"))

	input, filename, err := readInput(cmd, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	logger.Debug().
		Str("filename", filename).
		Int("bytes", len(input)).
		Msg("read clone list")

	opts := []letclone.Option{
		letclone.WithCloneMethod(viper.GetString("clone-method")),
	}
	if filename != "" {
		opts = append(opts, letclone.WithFilename(filename))
	}

	start := time.Now()
	output, err := letclone.Expand(cmd.Context(), input, opts...)
	if err != nil {
		logger.Debug().Err(err).Msg("expansion failed")
		printError(err)
		return err
	}
	logger.Debug().
		Int("statements", strings.Count(output, "\n")).
		Dur("elapsed", time.Since(start)).
		Msg("expansion complete")
	fmt.Print(output)
	return nil
}

// newLogger returns a logger that writes to stderr when verbose is set and
// discards everything otherwise.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.New(io.Discard)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// readInput resolves the clone list from the --code flag, a file argument,
// or stdin, in that order of precedence.
func readInput(cmd *cobra.Command, args []string) (input, filename string, err error) {
	if code := viper.GetString("code"); code != "" {
		return code, "", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", "", fmt.Errorf("no input: pass a clone list with -c, a file argument, or stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "", nil
}

// printError writes the error to stderr, with source context and colors when
// stderr is a terminal.
func printError(err error) {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) && !viper.GetBool("no-color")
	formatter := errors.NewFormatter(useColor)
	if fe, ok := err.(errors.FormattableError); ok {
		fmt.Fprint(os.Stderr, formatter.Format(fe.ToFormatted()))
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
}
