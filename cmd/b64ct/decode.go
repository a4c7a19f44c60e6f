package main

import (
	"github.com/ericlagergren/b64ct"
	"github.com/spf13/cobra"
)

func newDecodeCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [flags] [FILE...]",
		Short: "Decode files or standard input",
		Long: `Decode each FILE, or standard input if none is given or FILE is -,
and write the raw bytes to standard output in argument order.

Nothing is written unless every input decodes successfully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd.Context(), cmd, args, global.jobs, func(src []byte) ([]byte, error) {
				return b64ct.AppendDecode(nil, src)
			})
		},
	}
}
