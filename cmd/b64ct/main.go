package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/ericlagergren/b64ct"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitCode is returned when a command fails.
const exitCode = 125

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	logLevel string
	jobs     int
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "b64ct",
		Short: "Constant-time base64 encoder and decoder",
		Long: `b64ct encodes and decodes base64 without data-dependent
branches or memory accesses, so it is safe to use on key material.

Decoding accepts the standard and URL-safe alphabets, with or without
padding, and ignores whitespace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pFlags := cmd.PersistentFlags()
	pFlags.StringVar(&opts.logLevel, "log-level", "warn",
		fmt.Sprintf("Log messages above specified level (%s)", strings.Join(logLevels, ", ")))
	pFlags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0),
		"Number of inputs processed concurrently")

	cmd.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
		newKernelCommand(),
	)
	return cmd
}

func (o *globalOptions) setup(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", o.logLevel)
	}
	logrus.SetLevel(level)
	if o.jobs < 1 {
		return errors.Errorf("--jobs must be at least 1, got %d", o.jobs)
	}
	logrus.Debugf("Called %s.PersistentPreRunE(%s)", cmd.Name(), strings.Join(os.Args, " "))
	logrus.Debugf("Using %s kernel", b64ct.Kernel())
	return nil
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode)
	}
}
