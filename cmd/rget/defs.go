package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rget/pkg/expr"
	"github.com/dmitrymomot/rget/pkg/store"
)

func newDefsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defs",
		Short: "Manage named definitions referenced as $name",
	}

	cmd.AddCommand(
		newDefsWriteCommand(a, "add", "Add a definition", (*store.Definitions).Add),
		newDefsWriteCommand(a, "up", "Replace an existing definition", (*store.Definitions).Update),
		newDefsRemoveCommand(a),
		newDefsGetCommand(a),
		newDefsListCommand(a),
	)
	return cmd
}

type defsWriter func(d *store.Definitions, ctx context.Context, kind store.Kind, name, value string) error

func newDefsWriteCommand(a *app, use, short string, write defsWriter) *cobra.Command {
	return &cobra.Command{
		Use:   use + " re|cc NAME VALUE",
		Short: short,
		Long: short + `.

re values are expressions such as "[an(10;nr),'@test.com']" and are checked
before saving. cc values are the characters to draw from.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := store.ParseKind(args[0])
			if err != nil {
				return err
			}
			name, value := args[1], args[2]

			if kind == store.KindExpression {
				prog, err := expr.Parse(value)
				if err == nil {
					err = prog.Validate()
				}
				if err != nil {
					return fmt.Errorf("definition %s: %w", name, err)
				}
			}

			if err := write(store.NewDefinitions(a.store), cmd.Context(), kind, name, value); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s saved\n", name)
			return nil
		},
	}
}

func newDefsRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.NewDefinitions(a.store).Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s removed\n", args[0])
			return nil
		},
	}
}

func newDefsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := store.NewDefinitions(a.store).Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s %s %s\n", d.Name, d.Kind, d.Value)
			return nil
		},
	}
}

func newDefsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := store.NewDefinitions(a.store).List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tVALUE")
			for _, d := range defs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Kind, d.Value)
			}
			return w.Flush()
		},
	}
}
