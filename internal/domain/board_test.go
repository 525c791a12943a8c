package domain

import (
    "errors"
    "testing"
)

func TestPlaceAndClear(t *testing.T) {
    var b Board
    if err := b.Place(4, X); err != nil {
        t.Fatalf("Place: %v", err)
    }
    if b[4] != X {
        t.Fatalf("expected X at 4, got %v", b[4])
    }
    if err := b.Place(4, O); !errors.Is(err, ErrOccupied) {
        t.Fatalf("expected ErrOccupied, got %v", err)
    }
    if err := b.Place(9, O); !errors.Is(err, ErrOutOfBounds) {
        t.Fatalf("expected ErrOutOfBounds, got %v", err)
    }
    if err := b.Place(-1, O); !errors.Is(err, ErrOutOfBounds) {
        t.Fatalf("expected ErrOutOfBounds, got %v", err)
    }
    if err := b.Place(0, Empty); !errors.Is(err, ErrInvalidSymbol) {
        t.Fatalf("expected ErrInvalidSymbol, got %v", err)
    }
    b.Clear(4)
    if b != (Board{}) {
        t.Fatalf("expected empty board after Clear, got %v", b)
    }
}

func TestIsFullAndEmptyCells(t *testing.T) {
    b, err := ParseBoard("XOX|OXO|OX.")
    if err != nil {
        t.Fatalf("ParseBoard: %v", err)
    }
    if b.IsFull() {
        t.Fatalf("board with an empty cell is not full")
    }
    if got := b.EmptyCells(); len(got) != 1 || got[0] != 8 {
        t.Fatalf("expected [8], got %v", got)
    }
    b[8] = O
    if !b.IsFull() {
        t.Fatalf("expected full board")
    }
    if got := b.EmptyCells(); len(got) != 0 {
        t.Fatalf("expected no empty cells, got %v", got)
    }
    if b.Count(X) != 4 || b.Count(O) != 5 {
        t.Fatalf("unexpected counts X=%d O=%d", b.Count(X), b.Count(O))
    }
}

func TestParseBoard(t *testing.T) {
    tests := []struct {
        in      string
        want    string
        wantErr bool
    }{
        {in: ".........", want: "........."},
        {in: "xx_/oo_/___", want: "XX.OO...."},
        {in: "XOX OXO  X", wantErr: true},
        {in: "XOX|OXO|  X", want: "XOXOXO..X"},
        {in: "XOXOXOXOXO", wantErr: true},
        {in: "XOZ......", wantErr: true},
    }
    for _, tc := range tests {
        b, err := ParseBoard(tc.in)
        if tc.wantErr {
            if err == nil {
                t.Fatalf("ParseBoard(%q): expected error, got %v", tc.in, b)
            }
            continue
        }
        if err != nil {
            t.Fatalf("ParseBoard(%q): %v", tc.in, err)
        }
        if b.String() != tc.want {
            t.Fatalf("ParseBoard(%q) = %q, want %q", tc.in, b.String(), tc.want)
        }
    }
}

func TestCellOther(t *testing.T) {
    if X.Other() != O || O.Other() != X || Empty.Other() != Empty {
        t.Fatalf("unexpected Other mapping")
    }
}
