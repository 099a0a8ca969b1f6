package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"alecviz/internal/codec"
	"alecviz/internal/core/generator"
	"alecviz/internal/domain"
)

// renderID is the metadata id of rendered graphs
const renderID = "0"

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one graph to stdout",
	Long: `Render the graph for a single view and write it to stdout.

Example:
  alecviz render --sample --time 1546759375000 --prune
  alecviz render --data-dir ./data --radius 1 --focal swcore01 --format yaml`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Int64("time", 0, "view time in epoch milliseconds (default now)")
	renderCmd.Flags().Int("radius", domain.DefaultRadius, "hops around the focal vertices")
	renderCmd.Flags().String("focal", "", "label substring selecting focal vertices")
	renderCmd.Flags().Bool("prune", false, "remove inventory with no alarms")
	renderCmd.Flags().String("format", "json", "output format (json, yaml)")
	renderCmd.Flags().String("data-dir", "", "dataset directory")
	renderCmd.Flags().String("db", "", "SQLite dataset store")
	renderCmd.Flags().String("dataset", "", "dataset name in the store")
	renderCmd.Flags().Bool("sample", false, "render the embedded sample dataset")
	renderCmd.MarkFlagsMutuallyExclusive("sample", "data-dir")
	renderCmd.MarkFlagsMutuallyExclusive("sample", "db")
}

func runRender(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	ts, _ := flags.GetInt64("time")
	if !flags.Changed("time") {
		ts = time.Now().UnixMilli()
	}
	radius, _ := flags.GetInt("radius")
	focal, _ := flags.GetString("focal")
	prune, _ := flags.GetBool("prune")
	format, _ := flags.GetString("format")

	view, err := domain.NewGraphView(domain.ViewParams{
		Timestamp:                   &ts,
		Radius:                      &radius,
		FocalPoint:                  focal,
		RemoveInventoryWithNoAlarms: prune,
	})
	if err != nil {
		return err
	}

	exporter, err := codec.ExporterFor(format)
	if err != nil {
		return err
	}

	var source datasetSource
	source.Dir, _ = flags.GetString("data-dir")
	source.DBPath, _ = flags.GetString("db")
	source.Dataset, _ = flags.GetString("dataset")

	ds, err := source.load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", source, err)
	}

	gen, err := generator.New(renderID, ds)
	if err != nil {
		return err
	}

	return exporter.Export(gen.Graph(view), cmd.OutOrStdout())
}
