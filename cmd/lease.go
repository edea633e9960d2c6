package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

var leaseCmd = &cobra.Command{
	Use:   "lease <index>",
	Short: "Mint a fresh single-use completion token for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runLease,
}

func init() {
	rootCmd.AddCommand(leaseCmd)
}

func runLease(cmd *cobra.Command, args []string) error {
	id, err := planID(nil)
	if err != nil {
		return err
	}
	idx, err := models.ParseIndex(args[0])
	if err != nil {
		return err
	}
	resp, err := apiClient().GenerateLease(cmd.Context(), models.PlanId(id), idx)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(resp)
	}
	fmt.Printf("lease token: %d\n", resp.Result.Token)
	if len(resp.Result.Suggestions) > 0 {
		fmt.Println("verify before completing:")
		fmt.Println(strings.Join(resp.Result.Suggestions, "\n"))
	}
	return nil
}
