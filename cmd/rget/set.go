package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rget/pkg/store"
)

func newSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set [KEY=[OP] VALUE]",
		Short: "Change min_length or max_length",
		Long: `Change a length bound used by random lengths.

OP is one of + - * / and is applied to the current value; without OP the
value is assigned. Division truncates.

  rget set min_length=+ 5
  rget set max_length=/ 2
  rget set max_length=64

Without arguments the current bounds are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := store.NewSettings(a.store)
			if len(args) == 0 {
				minLen, maxLen, err := settings.Bounds(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s = %d\n%s = %d\n", store.KeyMinLength, minLen, store.KeyMaxLength, maxLen)
				return nil
			}

			key, value, err := settings.Apply(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s = %d\n", key, value)
			return nil
		},
	}
}
