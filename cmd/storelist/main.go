// Package main provides the storelist CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matsen/storelist/internal/config"
	"github.com/matsen/storelist/internal/logging"
	"github.com/matsen/storelist/internal/menu"
	"github.com/matsen/storelist/internal/storage"
	"github.com/matsen/storelist/internal/store"
)

// AutoFlag selects automatic mode when given as the first argument.
const AutoFlag = "-auto"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storelist [-auto]",
	Short: "Keep a list of stores from a text menu",
	Long: `storelist manages a list of stores (name, address, specialization,
working hours, phone numbers) through an interactive text menu.

The list is loaded from the data file at startup and written back on exit.
Run with -auto to append a fixed store, print the list, save and exit
without showing the menu.

Only -auto is recognised; any other invocation, including --help and
--version, opens the menu.

Settings are read from .storelist.yml in the working directory when present.`,
	// -auto is a single-dash word, so arguments are taken verbatim and no
	// other flag (including --help) is recognised.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		code := run(args, ".", cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if code != ExitSuccess {
			os.Exit(code)
		}
		return nil
	},
}

// run executes one program invocation in dir and returns the exit code.
func run(args []string, dir string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(stderr, "error: loading config: %v\n", err)
		return ExitError
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
	defer logger.Sync()

	backend, err := storage.Open(cfg.Format, cfg.DataFile(dir))
	if err != nil {
		logger.Error("opening storage", zap.Error(err))
		return ExitError
	}

	session := menu.NewSession(menu.Options{
		Backend: backend,
		In:      stdin,
		Out:     stdout,
		Logger:  logger,
	})
	session.Load()

	if len(args) > 0 && args[0] == AutoFlag {
		a := cfg.AutoStore
		session.RunAuto(store.New(a.Name, a.Address, a.Specialization, a.WorkingHours))
		return ExitSuccess
	}

	session.Run()
	return ExitSuccess
}
