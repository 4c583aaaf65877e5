package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const layoutMonth = "2006-01"

// MonthOptions selects the calendar month.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Month to render, example: --month="2026-02". Defaults to the current month.`)
}

// GetMonth returns the first of the chosen month, or of now when unset.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("options: invalid month %q, want YYYY-MM", o.MonthString)
	}
	return t, nil
}
