package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"triplets/internal/equation"
	"triplets/internal/solver"
)

type SolverType int

const (
	serial SolverType = iota
	parallel
)

var solverTypes = map[SolverType]string{
	serial:   "serial",
	parallel: "parallel",
}

type BenchmarkResult struct {
	Solver    SolverType
	Workers   int
	Variables int
	Equations []string
	Solutions int
	Duration  int64
}

// Each benchmark bundle is an addition chain A+B=C, A+C=D, ... so the solver
// has work at every depth of the search.
func chainBundle(variables int) equation.Bundle {
	equations := make([]equation.Equation, 0, variables-2)
	for i := 2; i < variables; i++ {
		equations = append(equations, equation.Equation{
			X:  equation.Var(0),
			Y:  equation.Var(i - 1),
			Z:  equation.Var(i),
			Op: equation.OpAdd,
		})
	}
	return equation.Bundle{Variables: variables, Equations: equations}
}

func main() {
	minVarsPtr := flag.Int("min-vars", 4, "smallest universe to benchmark")
	maxVarsPtr := flag.Int("max-vars", 9, "largest universe to benchmark")
	outPtr := flag.String("out", "benchmark_results.csv", "path of the CSV output")
	flag.Parse()

	if *minVarsPtr < 3 || *maxVarsPtr < *minVarsPtr {
		log.Fatalf("min-vars must be at least 3 and max-vars at least min-vars: got %v..%v", *minVarsPtr, *maxVarsPtr)
	}

	workerCounts := []int{1, 2, 4, 8}
	results := make([]BenchmarkResult, 0)

	for variables := *minVarsPtr; variables <= *maxVarsPtr; variables++ {
		bundle := chainBundle(variables)

		for _, solverType := range []SolverType{serial, parallel} {
			workers := []int{1}
			if solverType == parallel {
				workers = workerCounts
			}

			for _, workerCount := range workers {
				fmt.Printf("Benchmarking %v variables with solver \"%v\" and %v worker(s)\n",
					variables, solverTypes[solverType], workerCount)

				engine := solver.NewSolver()
				if solverType == parallel {
					engine = solver.NewParallelSolver(workerCount)
				}

				start := time.Now()
				solutions, err := engine.Solve(context.Background(), bundle)
				if err != nil {
					log.Fatalf("an error occurred during the benchmark at %v variables: %v", variables, err)
				}
				duration := time.Since(start)

				results = append(results, BenchmarkResult{
					Solver:    solverType,
					Workers:   workerCount,
					Variables: variables,
					Equations: bundle.Strings(),
					Solutions: len(solutions),
					Duration:  duration.Milliseconds(),
				})
			}
		}
	}

	toCsv(*outPtr, results)
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Workers", "Variables", "Bundle", "Solutions", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			solverTypes[result.Solver],
			fmt.Sprintf("%d", result.Workers),
			fmt.Sprintf("%d", result.Variables),
			strings.Join(result.Equations, " "),
			fmt.Sprintf("%d", result.Solutions),
			fmt.Sprintf("%d", result.Duration),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
