package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/sirupsen/logrus"

	"triplets/internal/analysis"
)

const puzzlesBucket = "puzzles"

// StoredPuzzle is a unique-solution bundle persisted in the bank, keyed by
// its canonical form.
type StoredPuzzle struct {
	analysis.Puzzle
	FoundAt time.Time `json:"foundAt"`
}

// Bank is a local catalog of unique-solution puzzles backed by a bolt
// database. Solver assignments are never persisted here, only the canonical
// analysis output.
type Bank struct {
	database *bolt.DB
	puzzles  *BoltTable[StoredPuzzle]
	logger   *logrus.Logger
}

func OpenBank(path string, logger *logrus.Logger) (*Bank, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	database, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("cannot open puzzle bank at %v: %w", path, err)
	}

	puzzles, err := NewBoltTable[StoredPuzzle](database, puzzlesBucket)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	return &Bank{
		database: database,
		puzzles:  puzzles,
		logger:   logger,
	}, nil
}

func (b *Bank) Close() error {
	return b.database.Close()
}

// Save inserts the puzzles, skipping canonical forms already in the bank.
// Returns the number actually inserted.
func (b *Bank) Save(puzzles []analysis.Puzzle) (int, error) {
	inserted := 0
	for _, puzzle := range puzzles {
		exists, err := b.puzzles.Has(puzzle.ID())
		if err != nil {
			return inserted, err
		}
		if exists {
			b.logger.Debugf("puzzle %v already in bank", puzzle.ID())
			continue
		}
		entry := StoredPuzzle{Puzzle: puzzle, FoundAt: time.Now().UTC()}
		if err := b.puzzles.Insert(&entry); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// List returns every stored puzzle sorted by canonical ID.
func (b *Bank) List() ([]StoredPuzzle, error) {
	puzzles, err := b.puzzles.List()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(puzzles, func(a, b StoredPuzzle) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return puzzles, nil
}

// Search returns stored puzzles whose equations contain the given substring,
// e.g. "A+B" or "A*B=C".
func (b *Bank) Search(term string) ([]StoredPuzzle, error) {
	puzzles, err := b.puzzles.Search(func(entry *StoredPuzzle) (bool, error) {
		for _, eq := range entry.Equations {
			if strings.Contains(eq, term) {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(puzzles, func(a, b StoredPuzzle) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return puzzles, nil
}
