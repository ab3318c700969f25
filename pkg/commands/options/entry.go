package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO = "2006-01-02"
)

// EntryOptions captures submission flags shared by add and record.
type EntryOptions struct {
	OnString string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date for the entry, example: --on="2026-02-28".`)
}

func (o *EntryOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
