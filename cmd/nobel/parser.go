package nobel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// Options holds the parameters for one fetch run
type Options struct {
	YearFrom    int
	YearTo      int
	JSON        bool
	JSONOutput  string
	Excel       bool
	ExcelOutput string
}

// FetchNobelWithParams runs the fetch → transform → export pipeline once
func FetchNobelWithParams(opts Options) error {
	raw, err := FetchLaureates(context.Background(), opts.YearFrom, opts.YearTo)
	if err != nil {
		return fmt.Errorf("error fetching laureates: %w", err)
	}

	laureates := TransformLaureates(raw, opts.YearFrom, opts.YearTo)
	if len(laureates) == 0 {
		slog.Warn("No laureate data retrieved for the configured year range, skipping export")
		return nil
	}

	for _, format := range requestedFormats(opts) {
		if err := runWriter(format, laureates, opts); err != nil {
			return err
		}
	}

	slog.Info("Fetcher finished", "laureates", len(laureates))
	return nil
}

func requestedFormats(opts Options) []string {
	var formats []string
	if opts.JSON {
		formats = append(formats, "json")
	}
	if opts.Excel {
		formats = append(formats, "excel")
	}
	if viper.GetBool("datasette.enabled") {
		formats = append(formats, "sqlite")
	}
	return formats
}
