// Package synth builds synthetic web-analytics hit records and writes them as CSV.
package synth

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// WindowDays is the length of the EventDate window that ends at the synthesizer's now.
const WindowDays = 365

// Synthesizer samples Hit Records from fixed distributions.
// It is not safe for concurrent use; give each goroutine its own.
type Synthesizer struct {
	rand  *rand.Rand
	now   time.Time
	start time.Time
}

// New returns a synthesizer whose EventDate window ends at now.
func New(now time.Time, r *rand.Rand) *Synthesizer {
	return &Synthesizer{
		rand:  r,
		now:   now,
		start: now.AddDate(0, 0, -WindowDays),
	}
}

// NewSeeded returns a synthesizer backed by a PCG source, so equal seeds yield equal records.
func NewSeeded(now time.Time, seed uint64) *Synthesizer {
	return New(now, rand.New(rand.NewPCG(seed, seed)))
}

// Window returns the first and last day EventDate may take.
func (s *Synthesizer) Window() (time.Time, time.Time) {
	return s.start, s.now
}

// Next samples one record. Every field is drawn independently.
func (s *Synthesizer) Next() Record {
	return Record{
		EventDate:       s.eventDate(),
		CounterID:       1000 + s.rand.IntN(9000),
		ClientIP:        s.clientIP(),
		SearchEngineID:  searchEngineIDs[s.rand.IntN(len(searchEngineIDs))],
		SearchPhrase:    searchPhrases[s.rand.IntN(len(searchPhrases))],
		ResolutionWidth: resolutionWidths[s.rand.IntN(len(resolutionWidths))],
		Title:           titles[s.rand.IntN(len(titles))],
		IsRefresh:       s.oneIn(4),
		DontCountHits:   s.oneIn(5),
	}
}

// eventDate picks a whole day in [start, now], both ends included.
func (s *Synthesizer) eventDate() string {
	return s.start.AddDate(0, 0, s.rand.IntN(WindowDays+1)).Format(DateLayout)
}

func (s *Synthesizer) clientIP() string {
	b := make([]byte, 0, 15)
	b = strconv.AppendInt(b, int64(1+s.rand.IntN(255)), 10)
	for i := 0; i < 3; i++ {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(s.rand.IntN(256)), 10)
	}
	return string(b)
}

// oneIn returns 1 with probability 1/n, otherwise 0.
func (s *Synthesizer) oneIn(n int) int {
	if s.rand.IntN(n) == 0 {
		return 1
	}
	return 0
}
