// Package puzzle models rows of the Lichess puzzle database and
// extracts the ones worth keeping.
package puzzle

// Record is one row of the puzzle database. Immutable once read.
type Record struct {
	ID         string
	FEN        string
	Moves      []string
	Rating     int
	Popularity int
	NbPlays    int
	Themes     []string
}

// HasAnyTheme reports whether the record carries at least one of the
// given themes.
func (r Record) HasAnyTheme(themes []string) bool {
	for _, want := range themes {
		for _, have := range r.Themes {
			if have == want {
				return true
			}
		}
	}
	return false
}
