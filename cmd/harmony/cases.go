package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
)

type casesOptions struct {
	search     string
	caseType   string
	status     string
	assignedTo string
	subject    string
	page       int
}

func newCasesCmd(a *app) *cobra.Command {
	var opts casesOptions

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Print one page of the filtered case list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.Level()}))

			dom, err := domain.NewInMemory(logger, a.cfg.API.Pagination)
			if err != nil {
				return err
			}

			listing, err := cases.Page(cmd.Context(), dom.Cases, opts.state())
			if err != nil {
				return err
			}

			return printCases(cmd.OutOrStdout(), listing)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.search, "search", "", "match case or document ids")
	flags.StringVar(&opts.caseType, "type", "", "case type (contradiction, overlap, gap)")
	flags.StringVar(&opts.status, "status", "", "case status (new, under_review, validated, rejected)")
	flags.StringVar(&opts.assignedTo, "assigned-to", "", "reviewer user id")
	flags.StringVar(&opts.subject, "subject", "", "subject category id")
	flags.IntVar(&opts.page, "page", 1, "page number")

	return cmd
}

// state builds the list state the dashboard would hold for the same filters.
func (o casesOptions) state() cases.ListState {
	s := cases.NewListState()

	f := cases.Filters{Search: strings.TrimSpace(o.search)}
	if o.caseType != "" {
		t := cases.Type(o.caseType)
		f.CaseType = &t
	}
	if o.status != "" {
		st := cases.Status(o.status)
		f.Status = &st
	}
	if o.assignedTo != "" {
		f.AssignedTo = &o.assignedTo
	}
	if o.subject != "" {
		f.Subject = &o.subject
	}

	s.SetFilters(f)
	s.SetPage(o.page)
	return s
}

func printCases(w io.Writer, listing *cases.Listing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tSEVERITY\tDOCUMENTS\tASSIGNED\tFLAGGED")
	for _, c := range listing.Page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.CaseType,
			c.Status,
			c.Severity,
			strings.Join(c.DocumentIDs, ","),
			c.AssignedTo,
			c.FlaggedDate.Format("2006-01-02"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := listing.Page
	_, err := fmt.Fprintf(w, "page %d of %d (%d cases)\n", p.Page, p.TotalPages, p.Total)
	return err
}
