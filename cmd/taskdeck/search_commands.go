package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gf-haseeb/taskdeck/internal/ui"
	"github.com/gf-haseeb/taskdeck/task"
)

// search
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks across all lists",
	Long: `Search tasks across all lists.

Matches are case-insensitive substring matches against the selected field.
Lists are visited in creation order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var searchField string

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics across all lists",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	searchCmd.Flags().StringVarP(&searchField, "field", "f", "", "field to search (title, description, tags)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	results, err := manager.Search(args[0], task.SearchField(searchField))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching tasks")
		return nil
	}

	table := ui.NewTable("LIST", "ID", "TITLE", "STATUS", "PRIORITY", "TAGS")
	for _, result := range results {
		table.AddRow(
			result.List.Name,
			strconv.Itoa(result.Task.ID),
			result.Task.Title,
			formatStatus(result.Task.Status),
			formatPriority(result.Task.Priority),
			formatTags(result.Task.Tags),
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.String())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	stats := manager.Statistics()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lists:       %d\n", stats.TotalLists)
	fmt.Fprintf(out, "Tasks:       %d\n", stats.TotalTasks)
	fmt.Fprintf(out, "Todo:        %d\n", stats.TodoTasks)
	fmt.Fprintf(out, "In progress: %d\n", stats.InProgressTasks)
	fmt.Fprintf(out, "Completed:   %d (%.2f%%)\n", stats.CompletedTasks, stats.CompletionPercentage)
	return nil
}
