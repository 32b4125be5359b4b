package models

// Target identifies a browser whose bookmark store can be exported
type Target string

const (
	TargetFirefox Target = "firefox"
	TargetChrome  Target = "chrome"
)

// Targets lists every supported target in export order.
// Firefox output always precedes Chrome output.
var Targets = []Target{TargetFirefox, TargetChrome}

// Record represents a single exported bookmark
type Record struct {
	Title string
	URL   string
}

// Valid reports whether the record has both a title and a URL
func (r Record) Valid() bool {
	return r.Title != "" && r.URL != ""
}

// Section holds the records extracted from one target
type Section struct {
	Target  Target
	Records []Record
}
