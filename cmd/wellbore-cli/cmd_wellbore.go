package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var meta, heavy bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wellbores",
		Long:  `List wellbore ids, or their MetaInfo with --meta, or complete documents with --heavy.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch {
			case heavy:
				wellBores, err := c.List(ctx)
				if err != nil {
					return err
				}
				return printJSON(out, wellBores)
			case meta:
				infos, err := c.ListMetaInfo(ctx)
				if err != nil {
					return err
				}
				return printJSON(out, infos)
			default:
				ids, err := c.ListIDs(ctx)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&meta, "meta", false, "Print the MetaInfo of every wellbore")
	cmd.Flags().BoolVar(&heavy, "heavy", false, "Print every wellbore with all its data")
	cmd.MarkFlagsMutuallyExclusive("meta", "heavy")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one wellbore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid wellbore id %q: %w", args[0], err)
			}
			wb, err := opts.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), wb)
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one wellbore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid wellbore id %q: %w", args[0], err)
			}
			if err := opts.client().Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
