package main

import (
	"fmt"

	"github.com/ericlagergren/b64ct"
	"github.com/ericlagergren/b64ct/internal/codec"
	"github.com/spf13/cobra"
)

func newKernelCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print the implementation in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if !all {
				_, err := fmt.Fprintln(w, b64ct.Kernel())
				return err
			}
			for _, impl := range codec.Implementations() {
				if _, err := fmt.Fprintln(w, impl.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every implementation this CPU supports")
	return cmd
}
