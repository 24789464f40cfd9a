package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gf-haseeb/taskdeck/internal/ui"
	"github.com/gf-haseeb/taskdeck/task"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage task lists",
}

// list create
var listCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListCreate,
}

var listCreateDescription string

// list ls
var listLsCmd = &cobra.Command{
	Use:     "ls",
	Short:   "Show all lists in their current order",
	Aliases: []string{"list"},
	Args:    cobra.NoArgs,
	RunE:    runListLs,
}

// list rename
var listRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a list",
	Args:  cobra.ExactArgs(2),
	RunE:  runListRename,
}

// list delete
var listDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a list and all of its tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runListDelete,
}

// list move
var listMoveCmd = &cobra.Command{
	Use:   "move <id> <position>",
	Short: "Move a list to a new position (manual ordering only)",
	Long: `Move a list to a new position.

Positions are zero-based. Moving lists is only allowed while the manual
ordering strategy is active; switch with "taskdeck order set manual" first.`,
	Args: cobra.ExactArgs(2),
	RunE: runListMove,
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect or change the list ordering strategy",
}

// order get
var orderGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the active ordering strategy",
	Args:  cobra.NoArgs,
	RunE:  runOrderGet,
}

// order set
var orderSetCmd = &cobra.Command{
	Use:   "set <strategy>",
	Short: "Set the ordering strategy",
	Long: `Set the ordering strategy.

Valid strategies: manual, alphabetical, creation_order, recently_modified,
recently_added_task.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrderSet,
}

func init() {
	listCreateCmd.Flags().StringVarP(&listCreateDescription, "description", "d", "", "list description")

	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listLsCmd)
	listCmd.AddCommand(listRenameCmd)
	listCmd.AddCommand(listDeleteCmd)
	listCmd.AddCommand(listMoveCmd)
	rootCmd.AddCommand(listCmd)

	orderCmd.AddCommand(orderGetCmd)
	orderCmd.AddCommand(orderSetCmd)
	rootCmd.AddCommand(orderCmd)
}

func runListCreate(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	list, err := manager.CreateList(args[0], listCreateDescription)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created list %d: %s\n", list.ID, list.Name)
	return nil
}

func runListLs(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	lists := manager.Lists()
	if len(lists) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No lists. Create one with: taskdeck list create <name>")
		return nil
	}

	now := time.Now()
	table := ui.NewTable("ID", "NAME", "TASKS", "DONE", "MODIFIED")
	for _, l := range lists {
		done := 0
		for _, t := range l.Tasks {
			if t.Status == task.StatusCompleted {
				done++
			}
		}
		table.AddRow(
			strconv.Itoa(l.ID),
			l.Name,
			strconv.Itoa(l.TaskCount()),
			strconv.Itoa(done),
			ui.FormatTimeAgo(l.ModifiedAt, now),
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.String())
	return nil
}

func runListRename(cmd *cobra.Command, args []string) error {
	id, err := parseID("list", args[0])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	if err := manager.RenameList(id, args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Renamed list %d to %s\n", id, strings.TrimSpace(args[1]))
	return nil
}

func runListDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID("list", args[0])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	if err := manager.DeleteList(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted list %d\n", id)
	return nil
}

func runListMove(cmd *cobra.Command, args []string) error {
	id, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	position, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[1])
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	if err := manager.MoveList(id, position); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Moved list %d to position %d\n", id, position)
	return nil
}

func runOrderGet(cmd *cobra.Command, args []string) error {
	manager, err := openManager()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), manager.Strategy())
	return nil
}

func runOrderSet(cmd *cobra.Command, args []string) error {
	strategy, err := task.NormalizeStrategy(task.Strategy(args[0]))
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	if err := manager.SetStrategy(strategy); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ordering strategy set to %s\n", strategy)
	return nil
}
