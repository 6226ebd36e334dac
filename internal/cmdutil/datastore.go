package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/nobelfetch/internal/datastore"
	"github.com/spf13/viper"
)

// DBName is the logical database name used for Datasette inserts
const DBName = "nobelfetch"

// WriteToDatastore writes records to the configured SQLite/Datasette store.
// Mode "local" writes to a SQLite file, "remote" pushes to a Datasette
// instance over HTTP.
func WriteToDatastore(records []map[string]any, schema, table, label string) error {
	mode := viper.GetString("datasette.mode")

	var store datastore.Store
	switch mode {
	case "local":
		store = datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	case "remote":
		store = datastore.NewDatasetteClient(
			viper.GetString("datasette.remote_url"),
			viper.GetString("datasette.api_token"),
		)
	default:
		return fmt.Errorf("invalid Datasette mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s datastore: %w", mode, err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if err := store.BatchInsert(DBName, table, records); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	slog.Info("Wrote records to datastore", "what", label, "mode", mode, "count", len(records))
	return nil
}
