package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"alecviz/internal/loader"
	"alecviz/internal/repository/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a dataset directory into the SQLite store",
	Long: `Validate a dataset directory and store it under a name, replacing any
dataset already stored under that name.

Example:
  alecviz import --data-dir ./data --db alecviz.db --name lab`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("data-dir", "", "dataset directory")
	importCmd.Flags().String("db", "", "SQLite dataset store (default from config)")
	importCmd.Flags().String("name", "", "dataset name (default: directory name)")
	_ = importCmd.MarkFlagRequired("data-dir")
}

func runImport(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("data-dir")
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}

	ds, err := loader.LoadDir(dir)
	if err != nil {
		return err
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.SaveDataset(cmd.Context(), name, ds); err != nil {
		return err
	}

	primary := ds.PrimaryResultSet()
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s: %d alarms, %d inventory objects, %d situation sets (%s: %d situations)\n",
		name, dbPath, len(ds.Alarms()), len(ds.Inventory()), len(ds.SituationResultSets()),
		primary.Source, len(primary.Situations))
	return nil
}

// resolveDBPath returns --db, falling back to the configured store
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		return dbPath, nil
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database.Path == "" {
		return "", fmt.Errorf("no database: set --db or database.path")
	}
	return cfg.Database.Path, nil
}
