package fixture

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"tactics/internal/puzzle"
)

// ConversionError reports a single puzzle that could not be replayed.
// The caller skips the record and the batch continues.
type ConversionError struct {
	PuzzleID string
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("puzzle %s: %s", e.PuzzleID, e.Reason)
}

// Converter replays recorded puzzle moves on a rules-aware board to
// derive the puzzle positions and human-readable move notation.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// Convert turns one raw database row into a fixture record.
//
// The database stores the position before the opponent's first move.
// That setup move is applied to reach the position the solver actually
// faces; it is not part of the solution sequence. The remaining moves
// alternate solver/opponent, so the move at 0-based sequence index i is
// the solver's exactly when i is even.
func (c *Converter) Convert(rec puzzle.Record, category string) (Record, error) {
	if len(rec.Moves) < 2 {
		return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: "move list too short"}
	}

	fen, err := chess.FEN(rec.FEN)
	if err != nil {
		return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: fmt.Sprintf("invalid FEN: %v", err)}
	}
	game := chess.NewGame(fen)

	if err := pushUCI(game, rec.Moves[0]); err != nil {
		return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: fmt.Sprintf("setup move %s: %v", rec.Moves[0], err)}
	}
	initialFEN := game.Position().String()

	sideToMove := "black"
	if game.Position().Turn() == chess.White {
		sideToMove = "white"
	}

	moves := make([]Move, 0, len(rec.Moves)-1)
	for i, uci := range rec.Moves[1:] {
		pos := game.Position()
		mv, err := chess.UCINotation{}.Decode(pos, uci)
		if err != nil {
			return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: fmt.Sprintf("move %s: %v", uci, err)}
		}
		if err := game.Move(mv); err != nil {
			return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: fmt.Sprintf("illegal move %s: %v", uci, err)}
		}
		moves = append(moves, Move{
			UCI:    uci,
			SAN:    chess.AlgebraicNotation{}.Encode(pos, mv),
			Player: i%2 == 0,
		})
	}
	resultingFEN := game.Position().String()

	// The first solution move is recomputed from the initial position so
	// its notation stands alone.
	bestSAN, err := sanFromFEN(initialFEN, rec.Moves[1])
	if err != nil {
		return Record{}, &ConversionError{PuzzleID: rec.ID, Reason: fmt.Sprintf("best move %s: %v", rec.Moves[1], err)}
	}

	return Record{
		ID:         rec.ID,
		InitialFEN: initialFEN,
		SideToMove: sideToMove,
		Rating:     rec.Rating,
		BestMove: BestMove{
			SAN: bestSAN,
			UCI: rec.Moves[1],
		},
		Moves:           moves,
		ResultingFEN:    resultingFEN,
		ExpectedPattern: Pattern{Type: strings.ToUpper(category)},
		Context:         fmt.Sprintf("Lichess puzzle %s (Rating: %d, Popularity: %d)", rec.ID, rec.Rating, rec.Popularity),
		Tags:            rec.Themes,
	}, nil
}

func pushUCI(game *chess.Game, uci string) error {
	mv, err := chess.UCINotation{}.Decode(game.Position(), uci)
	if err != nil {
		return err
	}
	return game.Move(mv)
}

func sanFromFEN(fen, uci string) (string, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return "", err
	}
	pos := chess.NewGame(opt).Position()
	mv, err := chess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		return "", err
	}
	return chess.AlgebraicNotation{}.Encode(pos, mv), nil
}
