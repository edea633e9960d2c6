package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/clidisplay"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

var moveCmd = &cobra.Command{
	Use:   "move <index>",
	Short: "Move a plan's cursor; empty index returns to the root",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Describe the task at a plan's cursor",
	RunE:  runCurrent,
}

func init() {
	rootCmd.AddCommand(moveCmd, currentCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := parseIndexOrRoot(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().MoveTo(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	if resp.Result == nil {
		fmt.Println("no task at that index; cursor unchanged")
		return nil
	}
	fmt.Printf("moved to: %s\n", *resp.Result)
	return nil
}

func runCurrent(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	resp, err := apiClient().Current(cmd.Context(), models.PlanId(id))
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	fmt.Println(clidisplay.Current(resp.Result))
	return nil
}
