package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gf-haseeb/taskdeck/internal/ui"
	"github.com/gf-haseeb/taskdeck/task"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks within a list",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <list-id> <title>",
	Short: "Add a task to a list",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAdd,
}

var (
	taskAddDescription string
	taskAddStatus      string
	taskAddPriority    string
	taskAddDue         string
	taskAddTags        []string
)

// task ls
var taskLsCmd = &cobra.Command{
	Use:     "ls <list-id>",
	Short:   "Show the tasks in a list",
	Aliases: []string{"list"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskLs,
}

var (
	taskLsStatus string
	taskLsSort   string
)

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <list-id> <task-id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskShow,
}

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <list-id> <task-id>",
	Short: "Update fields of a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateStatus      string
	taskUpdatePriority    string
	taskUpdateDue         string
	taskUpdateClearDue    bool
	taskUpdateTags        []string
)

// task start
var taskStartCmd = &cobra.Command{
	Use:   "start <list-id> <task-id>",
	Short: "Mark a task as in progress",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskStart,
}

// task done
var taskDoneCmd = &cobra.Command{
	Use:     "done <list-id> <task-id>",
	Short:   "Mark a task as completed",
	Aliases: []string{"finish"},
	Args:    cobra.ExactArgs(2),
	RunE:    runTaskDone,
}

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <list-id> <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskDelete,
}

// task move
var taskMoveCmd = &cobra.Command{
	Use:   "move <list-id> <task-id> <target-list-id>",
	Short: "Move a task to another list",
	Long: `Move a task to another list.

The task keeps its identity: ID, timestamps, status, priority, tags, and
due date all travel with it. The move either fully succeeds or leaves both
lists untouched.`,
	Args: cobra.ExactArgs(3),
	RunE: runTaskMove,
}

// clear-completed
var clearCompletedCmd = &cobra.Command{
	Use:   "clear-completed <list-id>",
	Short: "Remove all completed tasks from a list",
	Args:  cobra.ExactArgs(1),
	RunE:  runClearCompleted,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "task description (markdown)")
	taskAddCmd.Flags().StringVarP(&taskAddStatus, "status", "s", "", "initial status (todo, in_progress, completed)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", "", "priority (low, medium, high)")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringSliceVarP(&taskAddTags, "tag", "t", nil, "tag (repeatable)")

	taskLsCmd.Flags().StringVarP(&taskLsStatus, "status", "s", "", "filter by status")
	taskLsCmd.Flags().StringVar(&taskLsSort, "sort", "", "sort by field (created_at, modified_at, priority)")

	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "new title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "new description")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateStatus, "status", "s", "", "new status")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePriority, "priority", "p", "", "new priority")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "new due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateClearDue, "clear-due", false, "remove the due date")
	taskUpdateCmd.Flags().StringSliceVarP(&taskUpdateTags, "tag", "t", nil, "replace tags (repeatable)")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskLsCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskStartCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskMoveCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(clearCompletedCmd)
}

func parseDueDate(value string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if due, err := time.Parse(layout, value); err == nil {
			return &due, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", value)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}

	opts := task.AddTaskOptions{Description: taskAddDescription, Tags: taskAddTags}
	if taskAddStatus != "" {
		status, err := parseStatus(taskAddStatus)
		if err != nil {
			return err
		}
		opts.Status = status
	}
	if taskAddPriority != "" {
		priority, err := parsePriority(taskAddPriority)
		if err != nil {
			return err
		}
		opts.Priority = priority
	}
	if taskAddDue != "" {
		due, err := parseDueDate(taskAddDue)
		if err != nil {
			return err
		}
		opts.DueDate = due
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	created, err := manager.AddTask(listID, args[1], opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", created.ID, created.Title)
	return nil
}

func runTaskLs(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}

	var filter task.TaskFilter
	if taskLsStatus != "" {
		status, err := parseStatus(taskLsStatus)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	filter.SortBy = task.SortField(taskLsSort)

	manager, err := openManager()
	if err != nil {
		return err
	}

	list, err := manager.List(listID)
	if err != nil {
		return err
	}
	tasks, err := manager.Tasks(listID, filter)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No tasks in %s\n", list.Name)
		return nil
	}

	table := ui.NewTable("ID", "TITLE", "STATUS", "PRIORITY", "DUE", "TAGS")
	for _, t := range tasks {
		table.AddRow(
			strconv.Itoa(t.ID),
			t.Title,
			formatStatus(t.Status),
			formatPriority(t.Priority),
			ui.FormatDate(t.DueDate),
			formatTags(t.Tags),
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.String())
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	list, err := manager.List(listID)
	if err != nil {
		return err
	}
	t, err := manager.Task(listID, taskID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Task %d: %s\n", t.ID, t.Title)
	fmt.Fprintf(out, "List:     %s (%d)\n", list.Name, list.ID)
	fmt.Fprintf(out, "Status:   %s\n", formatStatus(t.Status))
	fmt.Fprintf(out, "Priority: %s\n", formatPriority(t.Priority))
	fmt.Fprintf(out, "Due:      %s\n", ui.FormatDate(t.DueDate))
	fmt.Fprintf(out, "Tags:     %s\n", formatTags(t.Tags))
	fmt.Fprintf(out, "Created:  %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Modified: %s\n", t.ModifiedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "\n%s\n", renderMarkdownOrDash(t.Description, terminalWidth()))
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !hasChangedFlags(flags, "title", "description", "status", "priority", "due", "clear-due", "tag") {
		return fmt.Errorf("nothing to update: pass at least one field flag")
	}
	if flags.Changed("due") && taskUpdateClearDue {
		return fmt.Errorf("--due and --clear-due are mutually exclusive")
	}

	var opts task.UpdateTaskOptions
	if flags.Changed("title") {
		opts.Title = &taskUpdateTitle
	}
	if flags.Changed("description") {
		opts.Description = &taskUpdateDescription
	}
	if flags.Changed("status") {
		status, err := parseStatus(taskUpdateStatus)
		if err != nil {
			return err
		}
		opts.Status = &status
	}
	if flags.Changed("priority") {
		priority, err := parsePriority(taskUpdatePriority)
		if err != nil {
			return err
		}
		opts.Priority = &priority
	}
	if flags.Changed("due") {
		due, err := parseDueDate(taskUpdateDue)
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}
	if taskUpdateClearDue {
		var cleared *time.Time
		opts.DueDate = &cleared
	}
	if flags.Changed("tag") {
		opts.Tags = &taskUpdateTags
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	updated, err := manager.UpdateTask(listID, taskID, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", updated.ID, updated.Title)
	return nil
}

func setTaskStatus(cmd *cobra.Command, args []string, status task.Status) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	updated, err := manager.SetTaskStatus(listID, taskID, status)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", updated.ID, updated.Status)
	return nil
}

func runTaskStart(cmd *cobra.Command, args []string) error {
	return setTaskStatus(cmd, args, task.StatusInProgress)
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	return setTaskStatus(cmd, args, task.StatusCompleted)
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	if err := manager.DeleteTask(listID, taskID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", taskID)
	return nil
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	sourceID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}
	targetID, err := parseID("list", args[2])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	moved, err := manager.MoveTask(sourceID, taskID, targetID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Moved task %d (%s) to list %d\n", moved.ID, moved.Title, targetID)
	return nil
}

func runClearCompleted(cmd *cobra.Command, args []string) error {
	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}

	manager, err := openManager()
	if err != nil {
		return err
	}

	removed, err := manager.ClearCompleted(listID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s)\n", removed)
	return nil
}
