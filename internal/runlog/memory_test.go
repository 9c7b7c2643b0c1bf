package runlog

import "testing"

func TestMemoryStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}
