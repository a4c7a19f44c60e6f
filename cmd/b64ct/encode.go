package main

import (
	"github.com/ericlagergren/b64ct"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*newlineValue)(nil)

// newlineValue is a pflag.Value accepting "lf" or "crlf".
type newlineValue b64ct.Newline

func (v *newlineValue) String() string {
	return b64ct.Newline(*v).String()
}

func (v *newlineValue) Set(s string) error {
	switch s {
	case "lf", "LF":
		*v = newlineValue(b64ct.LF)
	case "crlf", "CRLF":
		*v = newlineValue(b64ct.CRLF)
	default:
		return errors.Errorf("unknown newline %q, choose from: lf, crlf", s)
	}
	return nil
}

func (v *newlineValue) Type() string {
	return "newline"
}

func (v *newlineValue) token() string {
	if b64ct.Newline(*v) == b64ct.CRLF {
		return "\r\n"
	}
	return "\n"
}

type encodeOptions struct {
	url     bool
	noPad   bool
	wrap    int
	eol     bool
	newline newlineValue
}

func (o *encodeOptions) encoding() (*b64ct.Encoding, error) {
	if o.wrap < 0 {
		return nil, errors.Errorf("--wrap must not be negative, got %d", o.wrap)
	}
	cs := b64ct.Standard
	if o.url {
		cs = b64ct.URLSafe
	}
	return b64ct.NewEncoding(cs).
		WithPadding(!o.noPad).
		WithLineLength(o.wrap).
		WithNewline(b64ct.Newline(o.newline)), nil
}

func newEncodeCommand(global *globalOptions) *cobra.Command {
	opts := &encodeOptions{
		newline: newlineValue(b64ct.LF),
	}
	cmd := &cobra.Command{
		Use:   "encode [flags] [FILE...]",
		Short: "Encode files or standard input",
		Long: `Encode each FILE, or standard input if none is given or FILE is -,
and write the results to standard output in argument order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := opts.encoding()
			if err != nil {
				return err
			}
			return transform(cmd.Context(), cmd, args, global.jobs, func(src []byte) ([]byte, error) {
				out := enc.AppendEncode(nil, src)
				if opts.eol {
					out = append(out, opts.newline.token()...)
				}
				return out, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.url, "url", false, "Use the URL-safe alphabet")
	flags.BoolVar(&opts.noPad, "no-pad", false, "Omit '=' padding")
	flags.IntVarP(&opts.wrap, "wrap", "w", 0, "Wrap lines after `N` characters (0 disables wrapping)")
	flags.Var(&opts.newline, "newline", "Line separator used for wrapping and --eol (lf, crlf)")
	flags.BoolVar(&opts.eol, "eol", false, "Terminate each output with a newline")
	return cmd
}
