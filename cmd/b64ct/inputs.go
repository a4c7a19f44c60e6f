package main

import (
	"context"
	"io"
	"os"

	"github.com/ericlagergren/b64ct/internal/subtle"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// stdinName selects standard input.
const stdinName = "-"

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	return name
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "reading standard input")
	}
	data, err := os.ReadFile(name)
	return data, errors.Wrapf(err, "reading %s", name)
}

// transform applies fn to each input named by args, running at
// most jobs at once, and writes the results to the command's
// output in argument order. With no arguments it reads standard
// input.
//
// Inputs and outputs are wiped once written.
func transform(ctx context.Context, cmd *cobra.Command, args []string, jobs int, fn func([]byte) ([]byte, error)) error {
	if len(args) == 0 {
		args = []string{stdinName}
	}
	seen := false
	for _, name := range args {
		if name != stdinName {
			continue
		}
		if seen {
			return errors.New("standard input named more than once")
		}
		seen = true
	}

	outs := make([][]byte, len(args))
	defer func() {
		subtle.Wipe(outs...)
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	stdin := cmd.InOrStdin()
	for i, name := range args {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readInput(name, stdin)
			if err != nil {
				return err
			}
			defer subtle.Wipe(data)

			out, err := fn(data)
			if err != nil {
				return errors.Wrap(err, displayName(name))
			}
			logrus.Debugf("%s: %d bytes in, %d bytes out", displayName(name), len(data), len(out))
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, out := range outs {
		if _, err := w.Write(out); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
