// Package fixture converts raw puzzle rows into the JSON fixture format
// consumed by the tutor application.
package fixture

// Move is one replayed solution move in both notations. Player marks
// moves made by the solver; the rest are the opponent's replies.
type Move struct {
	UCI    string `json:"uci"`
	SAN    string `json:"san"`
	Player bool   `json:"player"`
}

// BestMove is the first solution move, kept separately for consumers
// that only need the answer.
type BestMove struct {
	SAN string `json:"san"`
	UCI string `json:"uci"`
}

// Pattern names the tactical motif a puzzle is expected to exhibit.
// Exact squares are detected downstream by the tactical library.
type Pattern struct {
	Type string `json:"type"`
}

// Record is one converted puzzle case. Never mutated after creation.
type Record struct {
	ID              string   `json:"id"`
	InitialFEN      string   `json:"initialFen"`
	SideToMove      string   `json:"sideToMove"`
	Rating          int      `json:"rating"`
	BestMove        BestMove `json:"bestMove"`
	Moves           []Move   `json:"moves"`
	ResultingFEN    string   `json:"resultingFen"`
	ExpectedPattern Pattern  `json:"expectedPattern"`
	Context         string   `json:"context"`
	Tags            []string `json:"tags"`
}

// File is the on-disk shape of one per-category fixture file.
type File struct {
	Description string   `json:"description"`
	Source      string   `json:"source"`
	GeneratedAt string   `json:"generatedAt"`
	Cases       []Record `json:"cases"`
}
