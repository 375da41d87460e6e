package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"triplets/internal/store"
)

// bankCmd represents the bank command
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "inspect the local puzzle bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "list every stored unique-solution puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := store.OpenBank(viper.GetString("bankPath"), &logger)
		if err != nil {
			return err
		}
		defer bank.Close()

		puzzles, err := bank.List()
		if err != nil {
			return err
		}
		renderPuzzles(puzzles)
		return nil
	},
}

var bankSearchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "list stored puzzles whose equations contain TERM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := store.OpenBank(viper.GetString("bankPath"), &logger)
		if err != nil {
			return err
		}
		defer bank.Close()

		puzzles, err := bank.Search(args[0])
		if err != nil {
			return err
		}
		renderPuzzles(puzzles)
		return nil
	},
}

func renderPuzzles(puzzles []store.StoredPuzzle) {
	if len(puzzles) == 0 {
		fmt.Println("No puzzles found...")
		return
	}

	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 8, 8, 0, '\t', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t\n", "VARS", "EQUATIONS", "FOUND")
	for _, puzzle := range puzzles {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n",
			puzzle.Variables,
			strings.Join(puzzle.Equations, ", "),
			puzzle.FoundAt.Format("2006-01-02 15:04:05"),
		)
	}
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankSearchCmd)
	rootCmd.AddCommand(bankCmd)
}
