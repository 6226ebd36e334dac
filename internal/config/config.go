package config

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/spf13/viper"
)

// MinAwardYear is the first year Nobel Prizes were awarded
const MinAwardYear = 1901

// LevelCritical marks fatal conditions; it sits one step above slog.LevelError
// so it is visible at every verbosity setting.
const LevelCritical = slog.LevelError + 4

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// EmailSuffix, when set, adds a derived contact email to the JSON export
	EmailSuffix string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("ExcelOutputDir", "./excel/")
	viper.SetDefault("OverwriteFiles", false)

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	EmailSuffix = viper.GetString("email_suffix")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// ValidateYearRange checks the configured award-year range.
// Returns a ConfigError when the range is unusable.
func ValidateYearRange(yearFrom, yearTo int) error {
	if yearFrom < MinAwardYear {
		return errors.NewConfigError(fmt.Sprintf("yearFrom %d is before the first Nobel Prize year %d", yearFrom, MinAwardYear))
	}
	if yearFrom > yearTo {
		return errors.NewConfigError(fmt.Sprintf("yearFrom %d is after yearTo %d", yearFrom, yearTo))
	}
	return nil
}
