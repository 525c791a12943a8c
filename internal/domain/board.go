package domain

import (
    "errors"
    "fmt"
    "strings"
)

// Cell represents a board cell state.
type Cell uint8

const (
    Empty Cell = iota
    X
    O
)

func (c Cell) String() string {
    switch c {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return " "
    }
}

// Other returns the opposing symbol. Empty has no opponent.
func (c Cell) Other() Cell {
    switch c {
    case X:
        return O
    case O:
        return X
    default:
        return Empty
    }
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Errors returned by domain operations.
var (
    ErrOutOfBounds   = errors.New("out of bounds")
    ErrOccupied      = errors.New("cell occupied")
    ErrInvalidSymbol = errors.New("invalid symbol")
    ErrGameOver      = errors.New("game over")
)

// Place puts c on cell i. The cell must exist and be empty.
func (b *Board) Place(i int, c Cell) error {
    if i < 0 || i >= len(b) {
        return ErrOutOfBounds
    }
    if c != X && c != O {
        return ErrInvalidSymbol
    }
    if b[i] != Empty {
        return ErrOccupied
    }
    b[i] = c
    return nil
}

// Clear resets cell i to Empty.
func (b *Board) Clear(i int) {
    b[i] = Empty
}

// IsFull reports whether no cell is Empty.
func (b Board) IsFull() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// EmptyCells lists the empty cell indices in ascending order.
func (b Board) EmptyCells() []int {
    out := make([]int, 0, len(b))
    for i, c := range b {
        if c == Empty {
            out = append(out, i)
        }
    }
    return out
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
    n := 0
    for _, v := range b {
        if v == c {
            n++
        }
    }
    return n
}

// String renders the board as 9 characters, '.' for empty cells.
func (b Board) String() string {
    var sb strings.Builder
    for _, c := range b {
        if c == Empty {
            sb.WriteByte('.')
            continue
        }
        sb.WriteString(c.String())
    }
    return sb.String()
}

// ParseBoard reads the notation produced by String. '_' and ' ' are also
// accepted for empty cells, and '|' or '/' separators are ignored.
func ParseBoard(s string) (Board, error) {
    var b Board
    n := 0
    for _, r := range s {
        var c Cell
        switch r {
        case '|', '/':
            continue
        case 'X', 'x':
            c = X
        case 'O', 'o':
            c = O
        case '.', '_', ' ':
            c = Empty
        default:
            return Board{}, fmt.Errorf("parse board %q: unexpected %q", s, r)
        }
        if n == len(b) {
            return Board{}, fmt.Errorf("parse board %q: more than %d cells", s, len(b))
        }
        b[n] = c
        n++
    }
    if n != len(b) {
        return Board{}, fmt.Errorf("parse board %q: got %d cells, want %d", s, n, len(b))
    }
    return b, nil
}
