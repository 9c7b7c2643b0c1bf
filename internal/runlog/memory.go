package runlog

import (
	"fmt"
	"sync"
)

// MemoryStore keeps runs in a map. Nothing survives the process.
type MemoryStore struct {
	runs map[string]Run
	mu   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]Run)}
}

func (m *MemoryStore) Record(run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID] = run
	return nil
}

func (m *MemoryStore) Get(id string) (Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, nil
}

func (m *MemoryStore) List() ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}
	sortRuns(runs)
	return runs, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
