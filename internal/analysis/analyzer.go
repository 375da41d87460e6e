package analysis

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"triplets/internal/equation"
	"triplets/internal/generator"
	"triplets/internal/solver"
)

// Space selects which equation space the analyzer enumerates bundles from.
type Space string

const (
	SpaceAll            Space = "all"
	SpaceDistinct       Space = "distinct"
	SpaceRepresentative Space = "representative"
)

func (s Space) Equations(variables int) ([]equation.Equation, error) {
	switch s {
	case SpaceAll:
		return generator.All(variables), nil
	case SpaceDistinct:
		return generator.Distinct(variables), nil
	case SpaceRepresentative:
		return generator.Representative(variables), nil
	}
	return nil, fmt.Errorf("%v is not a valid equation space", string(s))
}

// Puzzle is a canonicalized bundle with exactly one solution.
type Puzzle struct {
	Variables int            `json:"variables"`
	Equations []string       `json:"equations"`
	Labels    map[string]int `json:"labels"`
}

// ID keys the puzzle by its canonical form, so isomorphic bundles collide.
func (p Puzzle) ID() string {
	return fmt.Sprintf("n%v|%v", p.Variables, strings.Join(p.Equations, ";"))
}

// Report aggregates an analysis run: how many bundles admit how many
// solutions, and the deduplicated unique-solution puzzles.
type Report struct {
	Variables    int
	BundleSize   int
	Bundles      int
	Distribution map[int]int
	Unique       []Puzzle
}

type Analyzer interface {
	Analyze(ctx context.Context, variables, bundleSize int) (*Report, error)
}

func NewAnalyzer(space Space, workers int, logger *logrus.Logger) Analyzer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &bruteForceAnalyzer{
		space:   space,
		workers: workers,
		logger:  logger,
	}
}

type bruteForceAnalyzer struct {
	space   Space
	workers int
	logger  *logrus.Logger
}

const progressInterval = 10000

func (a *bruteForceAnalyzer) Analyze(ctx context.Context, variables, bundleSize int) (*Report, error) {
	equations, err := a.space.Equations(variables)
	if err != nil {
		return nil, err
	}
	if equations == nil {
		return nil, fmt.Errorf("variables must be between 1 and %v: got %v", equation.MaxVariables, variables)
	}
	if bundleSize < 1 || bundleSize > len(equations) {
		return nil, fmt.Errorf("bundle size must be between 1 and %v: got %v", len(equations), bundleSize)
	}

	total := generator.BundleCount(len(equations), bundleSize)
	a.logger.Debugf("analyzing %v bundles of size %v over %v equations with %v workers",
		total, bundleSize, len(equations), a.workers)

	report := Report{
		Variables:    variables,
		BundleSize:   bundleSize,
		Bundles:      total,
		Distribution: make(map[int]int),
		Unique:       make([]Puzzle, 0),
	}

	bundles := make(chan []equation.Equation, a.workers)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(bundles)
		return generator.Bundles(equations, bundleSize, func(bundle []equation.Equation) error {
			bundleCopy := make([]equation.Equation, len(bundle))
			copy(bundleCopy, bundle)
			select {
			case bundles <- bundleCopy:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	var mutex sync.Mutex
	processed := 0
	engine := solver.NewSolver()

	for i := 0; i < a.workers; i++ {
		group.Go(func() error {
			for bundle := range bundles {
				solutions, err := engine.Solve(ctx, equation.Bundle{Variables: variables, Equations: bundle})
				if err != nil {
					return err
				}

				mutex.Lock()
				report.Distribution[len(solutions)]++
				if len(solutions) == 1 {
					solved := equation.Canonicalize(bundle, solutions[0].Labels())
					report.Unique = append(report.Unique, Puzzle{
						Variables: variables,
						Equations: solved.Equations,
						Labels:    solved.Labels,
					})
				}
				processed++
				if processed%progressInterval == 0 {
					a.logger.Debugf("analyzed %v/%v bundles", processed, total)
				}
				mutex.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report.Unique = lo.UniqBy(report.Unique, func(puzzle Puzzle) string { return puzzle.ID() })
	slices.SortFunc(report.Unique, func(a, b Puzzle) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return &report, nil
}
