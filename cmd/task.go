package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/clidisplay"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Add, remove, complete, and change the level of tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a task from its parent's children",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRemove,
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <index>",
	Short: "Mark a task (and its subtree) completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskComplete,
}

var taskUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <index>",
	Short: "Clear a task's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUncomplete,
}

var taskLevelCmd = &cobra.Command{
	Use:   "level <index> <level-index>",
	Short: "Set a task's explicit abstraction-level override",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskLevel,
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskRemoveCmd, taskCompleteCmd, taskUncompleteCmd, taskLevelCmd)

	taskAddCmd.Flags().String("parent", "", "Parent task index; empty means the root")
	taskAddCmd.Flags().Int("level", 0, "Abstraction level for the new task (0 = highest)")
	taskAddCmd.Flags().String("notes", "", "Optional free-text notes for the new task")

	taskCompleteCmd.Flags().Uint8("lease", 0, "The token returned by 'scatterbrain lease'")
	taskCompleteCmd.Flags().Bool("force", false, "Skip the lease/summary check")
	taskCompleteCmd.Flags().String("summary", "", "What was actually done, required unless --force")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	parent, _ := cmd.Flags().GetString("parent")
	parentIdx, err := parseIndexOrRoot(parent)
	if err != nil {
		return err
	}
	level, _ := cmd.Flags().GetInt("level")
	notes, _ := cmd.Flags().GetString("notes")

	resp, err := apiClient().AddTask(cmd.Context(), models.PlanId(id), parentIdx, args[0], level, notes)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	fmt.Printf("added %q at index %s\n", args[0], resp.Result.Index.String())
	fmt.Println(clidisplay.Tree(resp.DistilledContext.TaskTree))
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().RemoveTask(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if resp.Result.Reason != "" {
		fmt.Printf("not removed: %s\n", resp.Result.Reason)
		return nil
	}
	fmt.Printf("removed %q\n", resp.Result.Task.Description)
	return nil
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")
	summaryFlag, _ := cmd.Flags().GetString("summary")
	var summary *string
	if summaryFlag != "" {
		summary = &summaryFlag
	}
	var lease *uint8
	if cmd.Flags().Changed("lease") {
		l, _ := cmd.Flags().GetUint8("lease")
		lease = &l
	}

	resp, err := apiClient().CompleteTask(cmd.Context(), models.PlanId(id), idx, lease, force, summary)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if !resp.Result {
		fmt.Println(clidisplay.Reminder(resp.Reminder))
		return nil
	}
	fmt.Println("completed")
	return nil
}

func runTaskUncomplete(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().UncompleteTask(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if !resp.Result.Succeeded {
		fmt.Printf("not changed: %s\n", resp.Result.Reason)
		return nil
	}
	fmt.Println("uncompleted")
	return nil
}

func runTaskLevel(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	var levelIdx int
	if _, err := fmt.Sscanf(args[1], "%d", &levelIdx); err != nil {
		return fmt.Errorf("invalid level index %q: %w", args[1], err)
	}
	resp, err := apiClient().ChangeLevel(cmd.Context(), models.PlanId(id), idx, levelIdx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if !resp.Result.OK {
		fmt.Printf("not changed: %s\n", resp.Result.Reason)
		return nil
	}
	fmt.Println("level changed")
	return nil
}

func parseIndexOrRoot(s string) (models.Index, error) {
	if s == "" {
		return nil, nil
	}
	return models.ParseIndex(s)
}
