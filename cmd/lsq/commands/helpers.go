package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// listFlags are the flags shared by every list command.
type listFlags struct {
	page    int
	perPage int
	include []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number to fetch (default: first page)")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "results per page, 1-100 (default 10)")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "related resources to include")
}

// options converts the flags into list options. Pagination is only sent
// when --page or --per-page is given.
func (f *listFlags) options() (*lemonsqueezy.ListOptions, error) {
	if f.page < 0 {
		return nil, constants.ErrInvalidPageNumber
	}

	if f.perPage < 0 || f.perPage > constants.MaxPageSize {
		return nil, constants.ErrInvalidPageSize
	}

	opts := lemonsqueezy.NewListOptions().WithInclude(f.include...)

	if f.page == 0 && f.perPage == 0 {
		return opts, nil
	}

	return opts.WithPageSize(max(f.page, 1), f.perPage), nil
}

// getFlags are the flags shared by every get command.
type getFlags struct {
	include []string
}

func (f *getFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "related resources to include")
}

func (f *getFlags) options() *lemonsqueezy.GetOptions {
	return &lemonsqueezy.GetOptions{Include: f.include}
}
