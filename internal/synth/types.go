package synth

import "strconv"

// Header is the column order of every file the synthesizer writes.
var Header = []string{
	"EventDate",
	"CounterID",
	"ClientIP",
	"SearchEngineID",
	"SearchPhrase",
	"ResolutionWidth",
	"Title",
	"IsRefresh",
	"DontCountHits",
}

// DateLayout is the format of Record.EventDate.
const DateLayout = "2006-01-02"

// Record is one simulated page-view hit.
type Record struct {
	EventDate       string
	CounterID       int
	ClientIP        string
	SearchEngineID  int
	SearchPhrase    string
	ResolutionWidth int
	Title           string
	IsRefresh       int
	DontCountHits   int
}

// Values returns the record's fields in Header order.
func (r Record) Values() []string {
	return []string{
		r.EventDate,
		strconv.Itoa(r.CounterID),
		r.ClientIP,
		strconv.Itoa(r.SearchEngineID),
		r.SearchPhrase,
		strconv.Itoa(r.ResolutionWidth),
		r.Title,
		strconv.Itoa(r.IsRefresh),
		strconv.Itoa(r.DontCountHits),
	}
}

// Result describes a finished write.
type Result struct {
	Path  string
	Rows  int
	Bytes int64
}
