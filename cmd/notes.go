package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Get, set, and clear a task's free-text notes",
}

var notesGetCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Print a task's notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesGet,
}

var notesSetCmd = &cobra.Command{
	Use:   "set <index> <notes>",
	Short: "Replace a task's notes",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotesSet,
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Clear a task's notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesDelete,
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesGetCmd, notesSetCmd, notesDeleteCmd)
}

func runNotesGet(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	notes, err := apiClient().GetTaskNotes(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(map[string]any{"notes": notes})
	}
	if notes == nil {
		fmt.Println("no notes for this task")
		return nil
	}
	fmt.Println(*notes)
	return nil
}

func runNotesSet(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().SetTaskNotes(cmd.Context(), models.PlanId(id), idx, args[1])
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if !resp.Result.OK {
		fmt.Printf("not updated: %s\n", resp.Result.Reason)
		return nil
	}
	fmt.Println("notes updated")
	return nil
}

func runNotesDelete(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().DeleteTaskNotes(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if !resp.Result.OK {
		fmt.Printf("not cleared: %s\n", resp.Result.Reason)
		return nil
	}
	fmt.Println("notes cleared")
	return nil
}
