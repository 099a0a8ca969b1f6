package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alecviz/internal/repository/sqlite"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage datasets in the SQLite store",
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		infos, err := repo.ListDatasets(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tALARMS\tINVENTORY\tRESULT SETS")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", info.Name, info.Alarms, info.Inventory, info.ResultSets)
		}
		return tw.Flush()
	},
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.DeleteDataset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsListCmd, datasetsDeleteCmd)
	datasetsCmd.PersistentFlags().String("db", "", "SQLite dataset store (default from config)")
}

func openStore(cmd *cobra.Command) (*sqlite.Repository, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return sqlite.New(dbPath)
}
