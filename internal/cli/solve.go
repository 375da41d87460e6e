package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"triplets/internal/equation"
	"triplets/internal/solver"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [EQUATION...]",
	Short: "find every valid assignment for a bundle of triplet equations",
	Example: `  triplets solve A+B=C
  triplets solve --vars 4 A+B=C A*B=D
  triplets solve --file bundle.json --parallel`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := cmd.Flags().GetString("file")
		if err != nil {
			return err
		}
		variables, err := cmd.Flags().GetInt("vars")
		if err != nil {
			return err
		}
		parallel, err := cmd.Flags().GetBool("parallel")
		if err != nil {
			return err
		}

		var bundle equation.Bundle
		switch {
		case file != "":
			bundle, err = equation.BundleFromJSON(file)
		case len(args) > 0:
			var equations []equation.Equation
			equations, err = equation.ParseAll(args)
			if err != nil {
				return err
			}
			if variables > 0 {
				bundle, err = equation.NewBundle(variables, equations)
			} else {
				bundle, err = equation.InferBundle(equations)
			}
		default:
			return fmt.Errorf("either equations or an input file must be given")
		}
		if err != nil {
			return err
		}

		engine := solver.NewSolver()
		if parallel {
			engine = solver.NewParallelSolver(viper.GetInt("workers"))
		}

		solutions, err := engine.Solve(cmd.Context(), bundle)
		if err != nil {
			return err
		}

		logger.Infof("%v solution(s) for %v over %v variables", len(solutions), bundle.Strings(), bundle.Variables)
		if len(solutions) == 0 {
			return nil
		}

		writer := table.NewWriter()
		writer.SetOutputMirror(os.Stdout)
		header := table.Row{}
		for i := 0; i < bundle.Variables; i++ {
			header = append(header, string(equation.Var(i)))
		}
		writer.AppendHeader(header)
		for _, solution := range solutions {
			row := table.Row{}
			for _, value := range solution {
				row = append(row, value)
			}
			writer.AppendRow(row)
		}
		writer.Render()
		return nil
	},
}

func init() {
	solveCmd.Flags().String("file", "", "path to a JSON bundle file")
	solveCmd.Flags().Int("vars", 0, "universe size; inferred from the equations when 0")
	solveCmd.Flags().Bool("parallel", false, "split the search across workers")
	rootCmd.AddCommand(solveCmd)
}
