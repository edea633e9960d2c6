package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the usage guide: getting started, workflow, levels, best practices",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(guide.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
