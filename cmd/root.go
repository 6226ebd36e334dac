package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/nobelfetch/cmd/nobel"
	"github.com/lepinkainen/nobelfetch/internal/config"
	"github.com/spf13/viper"
)

var runFetch = nobel.FetchNobelWithParams

// CLI represents the complete command structure for the nobelfetch application
type CLI struct {
	// Global flags
	Verbose   int  `short:"v" type:"counter" help:"Increase logging verbosity (repeatable: error, warn, info, debug)"`
	Overwrite bool `help:"Overwrite existing output files"`

	// SQLite/Datasette flags
	Sqlite     bool   `help:"Write fetched data to a SQLite database"`
	SqliteDB   string `help:"Path to SQLite database file" default:"./nobelfetch.db"`
	SqliteMode string `help:"SQLite output mode" default:"local" enum:"local,remote"`

	Fetch FetchCmd `cmd:"" help:"Fetch laureate data from the Nobel Prize API and export it"`
}

// FetchCmd represents the fetch command
type FetchCmd struct {
	JSON        bool   `help:"Write fetched data to a .json file"`
	JSONOutput  string `help:"Path to JSON output file (defaults to json/laureates.json)"`
	Excel       bool   `help:"Write fetched data to an .xlsx workbook"`
	ExcelOutput string `help:"Path to Excel output file (defaults to excel/laureates.xlsx)"`
	YearFrom    int    `help:"First award year to include (overrides api_params.nobelPrizeYear)"`
	YearTo      int    `help:"Last award year to include (overrides api_params.yearTo)"`
}

// Execute runs the Kong-based CLI
func Execute() {
	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("nobelfetch"),
		kong.Description("A tool to fetch Nobel Prize laureate data and export it to JSON, Excel or SQLite."),
		kong.UsageOnError(),
	)

	initLogging(cli.Verbose)
	initConfig()

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Log(context.Background(), config.LevelCritical, "Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("ExcelOutputDir", "./excel/")
	viper.SetDefault("OverwriteFiles", false)

	// Nobel Prize API defaults
	viper.SetDefault("api_params.nobelPrizeYear", 2002)
	viper.SetDefault("api_params.yearTo", 2024)
	viper.SetDefault("api.base_url", "https://api.nobelprize.org/2.1/laureates")
	viper.SetDefault("api.page_size", 50)
	viper.SetDefault("api.max_pages", 25)
	viper.SetDefault("api.timeout", "30s")

	// Excel formatting defaults
	viper.SetDefault("excel.header_color", "#4F81BD")
	viper.SetDefault("excel.zebra_color", "#DCE6F1")

	// SQLite/Datasette defaults
	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.mode", "local")
	viper.SetDefault("datasette.dbfile", "./nobelfetch.db")

	// Enable environment variable support
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Update config based on CLI flags
	config.SetOverwriteFiles(cli.Overwrite)

	// Update SQLite/Datasette config
	if cli.Sqlite {
		viper.Set("datasette.enabled", true)
	}
	viper.Set("datasette.dbfile", cli.SqliteDB)
	viper.Set("datasette.mode", cli.SqliteMode)
}

// Run methods for each command

func (f *FetchCmd) Run() error {
	// Read from config if values not provided via flags
	yearFrom := f.YearFrom
	if yearFrom == 0 {
		yearFrom = viper.GetInt("api_params.nobelPrizeYear")
	}
	yearTo := f.YearTo
	if yearTo == 0 {
		yearTo = viper.GetInt("api_params.yearTo")
	}

	// Reject an invalid range before any network call
	if err := config.ValidateYearRange(yearFrom, yearTo); err != nil {
		return err
	}

	return runFetch(nobel.Options{
		YearFrom:    yearFrom,
		YearTo:      yearTo,
		JSON:        f.JSON,
		JSONOutput:  f.JSONOutput,
		Excel:       f.Excel,
		ExcelOutput: f.ExcelOutput,
	})
}

func initLogging(verbosity int) {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: verbosityLevel(verbosity),
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}

// verbosityLevel maps the -v counter onto slog levels. Without -v only
// errors (and critical failures) are shown; each repetition opens one more
// level down to debug.
func verbosityLevel(count int) slog.Level {
	levels := []slog.Level{
		slog.LevelError,
		slog.LevelWarn,
		slog.LevelInfo,
		slog.LevelDebug,
	}
	if count < 0 {
		count = 0
	}
	if count >= len(levels) {
		count = len(levels) - 1
	}
	return levels[count]
}
