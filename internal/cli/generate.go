package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"triplets/internal/analysis"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "list the triplet-equation space over n variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		variables, err := cmd.Flags().GetInt("vars")
		if err != nil {
			return err
		}
		space, err := cmd.Flags().GetString("space")
		if err != nil {
			return err
		}

		equations, err := analysis.Space(space).Equations(variables)
		if err != nil {
			return err
		}
		if equations == nil {
			return fmt.Errorf("vars must be between 1 and 26: got %v", variables)
		}

		for _, eq := range equations {
			fmt.Println(eq)
		}
		logger.Infof("%v equations in the %q space over %v variables", len(equations), space, variables)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("vars", 3, "universe size (1..26)")
	generateCmd.Flags().String("space", "all", `equation space: "all" (2*n^3 forms), "distinct" (pairwise-distinct letters) or "representative" (compressed sample)`)
	rootCmd.AddCommand(generateCmd)
}
