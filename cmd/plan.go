package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/clidisplay"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create, list, inspect, and delete plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <prompt>",
	Short: "Start a new plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanCreate,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every live plan id",
	RunE:  runPlanList,
}

var planGetCmd = &cobra.Command{
	Use:   "get [plan-id]",
	Short: "Print a plan's full task tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlanGet,
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete [plan-id]",
	Short: "Delete a plan outright",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlanDelete,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planCreateCmd, planListCmd, planGetCmd, planDeleteCmd)
	planCreateCmd.Flags().String("notes", "", "Optional free-text notes for the plan")
}

func runPlanCreate(cmd *cobra.Command, args []string) error {
	notes, _ := cmd.Flags().GetString("notes")
	id, err := apiClient().CreatePlan(cmd.Context(), args[0], notes)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(map[string]any{"id": id})
	}
	fmt.Printf("created plan %d\n", id)
	return nil
}

func runPlanList(cmd *cobra.Command, args []string) error {
	ids, err := apiClient().ListPlans(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(ids)
	}
	rows := make([][]string, len(ids))
	for i, id := range ids {
		rows[i] = []string{fmt.Sprintf("%d", id)}
	}
	t := clidisplay.Table{Headers: []string{"PLAN ID"}, Rows: rows}
	fmt.Println(t.Render())
	return nil
}

func runPlanGet(cmd *cobra.Command, args []string) error {
	id, err := planID(args)
	if err != nil {
		return err
	}
	resp, err := apiClient().GetPlan(cmd.Context(), models.PlanId(id))
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	fmt.Println(clidisplay.Tree(resp.DistilledContext.TaskTree))
	return nil
}

func runPlanDelete(cmd *cobra.Command, args []string) error {
	id, err := planID(args)
	if err != nil {
		return err
	}
	if err := apiClient().DeletePlan(cmd.Context(), models.PlanId(id)); err != nil {
		return err
	}
	fmt.Printf("deleted plan %d\n", id)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
