package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"triplets/internal/analysis"
	"triplets/internal/store"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "enumerate every bundle of a given size and report its solution counts",
	Long: `Enumerates every bundle of the chosen size over the equation space,
solves each one, and reports the distribution of solution counts together
with the canonicalized unique-solution puzzles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		variables, err := cmd.Flags().GetInt("vars")
		if err != nil {
			return err
		}
		bundleSize, err := cmd.Flags().GetInt("bundle-size")
		if err != nil {
			return err
		}
		space, err := cmd.Flags().GetString("space")
		if err != nil {
			return err
		}
		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return err
		}
		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			return err
		}
		if workers == 0 {
			workers = viper.GetInt("workers")
		}

		analyzer := analysis.NewAnalyzer(analysis.Space(space), workers, &logger)
		report, err := analyzer.Analyze(cmd.Context(), variables, bundleSize)
		if err != nil {
			return err
		}

		renderDistribution(report)
		renderUnique(report)

		if save && len(report.Unique) > 0 {
			bank, err := store.OpenBank(viper.GetString("bankPath"), &logger)
			if err != nil {
				return err
			}
			defer bank.Close()

			inserted, err := bank.Save(report.Unique)
			if err != nil {
				return err
			}
			logger.Infof("saved %v new puzzle(s) to %v", inserted, viper.GetString("bankPath"))
		}
		return nil
	},
}

func renderDistribution(report *analysis.Report) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetTitle("%v bundles of size %v over %v variables", report.Bundles, report.BundleSize, report.Variables)
	writer.AppendHeader(table.Row{"SOLUTIONS", "BUNDLES"})

	counts := lo.Keys(report.Distribution)
	slices.Sort(counts)
	for _, count := range counts {
		writer.AppendRow(table.Row{count, report.Distribution[count]})
	}
	writer.Render()
}

func renderUnique(report *analysis.Report) {
	if len(report.Unique) == 0 {
		logger.Infof("no unique-solution bundles found")
		return
	}

	writer := list.NewWriter()
	writer.SetStyle(list.StyleConnectedRounded)
	writer.AppendItem("Unique puzzles")
	writer.Indent()
	for _, puzzle := range report.Unique {
		writer.AppendItem(strings.Join(puzzle.Equations, ", "))
	}
	writer.UnIndent()
	for _, line := range strings.Split(writer.Render(), "\n") {
		logger.Printf(line)
	}
}

func init() {
	analyzeCmd.Flags().Int("vars", 3, "universe size (1..26)")
	analyzeCmd.Flags().Int("bundle-size", 2, "number of equations per bundle")
	analyzeCmd.Flags().String("space", "all", `equation space: "all", "distinct" or "representative"`)
	analyzeCmd.Flags().Int("workers", 0, "solver workers; defaults to the configured value")
	analyzeCmd.Flags().Bool("save", false, "save unique puzzles to the bank")
	rootCmd.AddCommand(analyzeCmd)
}
