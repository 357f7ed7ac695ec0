package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/fieldkit/codec"
	"github.com/reoring/fieldkit/pagination"
)

func (a *app) paginateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Compute pagination metadata",
	}

	var total, limit, page int
	offset := &cobra.Command{
		Use:   "offset",
		Short: "Offset pagination metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return codec.EncodeJSON(a.out, pagination.BuildOffset(total, limit, page), true)
		},
	}
	offset.Flags().IntVar(&total, "total", 0, "total records")
	offset.Flags().IntVar(&limit, "limit", pagination.DefaultPageLimit, "page size")
	offset.Flags().IntVar(&page, "page", pagination.DefaultCurrentPage, "current page")

	var ctotal, climit int
	var after, before string
	cursor := &cobra.Command{
		Use:   "cursor",
		Short: "Cursor pagination metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return codec.EncodeJSON(a.out, pagination.BuildCursor(ctotal, after, before, climit), true)
		},
	}
	cursor.Flags().IntVar(&ctotal, "total", 0, "total records")
	cursor.Flags().IntVar(&climit, "limit", pagination.DefaultPageLimit, "page size")
	cursor.Flags().StringVar(&after, "after", "", "cursor of the next page")
	cursor.Flags().StringVar(&before, "before", "", "cursor of the previous page")

	cmd.AddCommand(offset, cursor)
	return cmd
}
