package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(constants.ConfigKeyOutput))

	switch format {
	case "", constants.OutputFormatTable:
		return constants.OutputFormatTable, nil
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// render writes v as JSON or YAML, or hands a table to fill for table output.
func render(w io.Writer, v any, fill func(table *tablewriter.Table) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(v)
	case constants.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(w)

		err := fill(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// property is one row of a Property/Value table.
type property struct {
	name  string
	value string
}

func renderProperties(w io.Writer, v any, properties []property) error {
	return render(w, v, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")

		for _, p := range properties {
			err := table.Append([]string{p.name, p.value})
			if err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		return nil
	})
}

// renderList prints one row per resource followed by the page position.
func renderList[R any](w io.Writer, resp *lemonsqueezy.ListResponse[R, lemonsqueezy.Included], headers []string, row func(R) []string) error {
	err := render(w, resp, func(table *tablewriter.Table) error {
		cells := make([]any, 0, len(headers))
		for _, h := range headers {
			cells = append(cells, h)
		}

		table.Header(cells...)

		for _, resource := range resp.Data {
			err := table.Append(row(resource))
			if err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	format, _ := outputFormat()
	if format == constants.OutputFormatTable && resp.Meta != nil {
		_, _ = fmt.Fprintln(w, pageSummary(resp.Meta.Page))
	}

	return nil
}

func pageSummary(page lemonsqueezy.PageMeta) string {
	summary := fmt.Sprintf("Page %d of %d (%d total)", page.CurrentPage, page.LastPage, page.Total)
	if page.HasNextPage() {
		summary += fmt.Sprintf(", next: --page %d", page.CurrentPage+1)
	}

	return summary
}

func formatTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(constants.TimeFormat)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

func orNotAvailable(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}
