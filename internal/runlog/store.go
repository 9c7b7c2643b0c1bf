// Package runlog keeps a ledger of generation runs so any dataset can be
// traced back to the seed and settings that produced it.
package runlog

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("run not found")

// Run is one invocation of the generator.
type Run struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Seed      uint64        `json:"seed"`
	Count     int           `json:"count"`
	Output    string        `json:"output"`
	Rows      int           `json:"rows"`
	Bytes     int64         `json:"bytes"`
}

// NewRun returns a run with a fresh ID.
func NewRun(startedAt time.Time, seed uint64, count int, output string) Run {
	return Run{
		ID:        uuid.New().String(),
		StartedAt: startedAt,
		Seed:      seed,
		Count:     count,
		Output:    output,
	}
}

// Store persists runs. Recording a run with an existing ID replaces it.
type Store interface {
	Record(run Run) error
	Get(id string) (Run, error)
	// List returns every run, oldest first.
	List() ([]Run, error)
	Close() error
}

func sortRuns(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
}
