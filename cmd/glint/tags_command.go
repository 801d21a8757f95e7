package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint/internal/statuslog"
)

func newTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show the message tag vocabulary and its line prefixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtr := statuslog.NewFormatter(false)
			rows := make([][]string, 0, len(statuslog.Tags()))
			for _, tag := range statuslog.Tags() {
				rows = append(rows, []string{
					string(tag),
					statuslog.Symbol(tag),
					fmtr.Format("message", tag),
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tag", "Glyph", "Rendered"}, rows))
			return err
		},
	}
}
