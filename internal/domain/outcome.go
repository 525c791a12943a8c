package domain

import "fmt"

// Lines holds the 8 winning triples.
var Lines = [8][3]int{
    // rows
    {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
    // cols
    {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
    // diags
    {0, 4, 8}, {2, 4, 6},
}

// HasWon reports whether side occupies all three cells of any line.
func HasWon(b Board, side Cell) bool {
    if side == Empty {
        return false
    }
    for _, ln := range Lines {
        if b[ln[0]] == side && b[ln[1]] == side && b[ln[2]] == side {
            return true
        }
    }
    return false
}

// Symbols binds the two roles of a match to X and O.
type Symbols struct {
    Computer Cell
    Opponent Cell
}

// NewSymbols binds the human opponent to human and the computer to the other symbol.
func NewSymbols(human Cell) (Symbols, error) {
    if human != X && human != O {
        return Symbols{}, fmt.Errorf("opponent symbol %d: %w", human, ErrInvalidSymbol)
    }
    return Symbols{Computer: human.Other(), Opponent: human}, nil
}

// Outcome classifies a board.
type Outcome uint8

const (
    Nonterminal Outcome = iota
    ComputerWins
    OpponentWins
    Draw
)

func (o Outcome) String() string {
    switch o {
    case ComputerWins:
        return "computer wins"
    case OpponentWins:
        return "opponent wins"
    case Draw:
        return "draw"
    default:
        return "in progress"
    }
}

// TerminalValue classifies b. Wins are checked before fullness, so a full
// board with a completed line is a win.
func TerminalValue(b Board, s Symbols) Outcome {
    switch {
    case HasWon(b, s.Computer):
        return ComputerWins
    case HasWon(b, s.Opponent):
        return OpponentWins
    case b.IsFull():
        return Draw
    default:
        return Nonterminal
    }
}
