// Package minimax implements exhaustive game-tree search for 3x3 tic-tac-toe.
//
// Scores are always from the computer's point of view: Win means the
// computer forces a win, Loss means the opponent does, Tie means best play
// by both sides ends in a draw. No pruning or depth limit is applied, so
// every score is exact.
package minimax

import (
    "errors"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
)

// Score is the exact value of a position under optimal play.
type Score int

const (
    Loss Score = -1
    Tie  Score = 0
    Win  Score = 1
)

func (s Score) String() string {
    switch s {
    case Win:
        return "win"
    case Loss:
        return "loss"
    default:
        return "draw"
    }
}

// ErrTerminalBoard is returned when a move is requested on a finished board.
var ErrTerminalBoard = errors.New("search on terminal board")

// MoveScore pairs a cell with the score of playing the computer's symbol there.
type MoveScore struct {
    Index int
    Score Score
}

// Evaluate returns the score of b with computerTurn deciding who moves next.
// b is used as scratch space and is restored before Evaluate returns.
func Evaluate(b *domain.Board, computerTurn bool, s domain.Symbols) Score {
    if domain.HasWon(*b, s.Computer) {
        return Win
    }
    if domain.HasWon(*b, s.Opponent) {
        return Loss
    }
    if b.IsFull() {
        return Tie
    }

    side, best := s.Opponent, Win+1
    if computerTurn {
        side, best = s.Computer, Loss-1
    }
    for i := range b {
        if b[i] != domain.Empty {
            continue
        }
        score := speculate(b, i, side, func() Score {
            return Evaluate(b, !computerTurn, s)
        })
        if computerTurn && score > best || !computerTurn && score < best {
            best = score
        }
    }
    return best
}

// BestMove picks the computer's move on b. Cells are tried in ascending
// order and a later cell only replaces the current choice with a strictly
// greater score, so ties go to the lowest index.
func BestMove(b *domain.Board, s domain.Symbols) (int, error) {
    moves, err := Analyze(b, s)
    if err != nil {
        return -1, err
    }
    best := moves[0]
    for _, m := range moves[1:] {
        if m.Score > best.Score {
            best = m
        }
    }
    return best.Index, nil
}

// Analyze scores every empty cell of b for the computer, in ascending index order.
func Analyze(b *domain.Board, s domain.Symbols) ([]MoveScore, error) {
    if domain.TerminalValue(*b, s) != domain.Nonterminal {
        return nil, ErrTerminalBoard
    }
    moves := make([]MoveScore, 0, 9)
    for i := range b {
        if b[i] != domain.Empty {
            continue
        }
        score := speculate(b, i, s.Computer, func() Score {
            return Evaluate(b, false, s)
        })
        moves = append(moves, MoveScore{Index: i, Score: score})
    }
    return moves, nil
}

// speculate places side on the empty cell i for the duration of fn.
func speculate(b *domain.Board, i int, side domain.Cell, fn func() Score) Score {
    b[i] = side
    defer b.Clear(i)
    return fn()
}
