package domain

import "testing"

// referenceWon checks every triple of cells that lies on a straight line of
// the grid, using coordinates instead of the Lines table.
func referenceWon(b Board, side Cell) bool {
    for i := 0; i < 9; i++ {
        for j := i + 1; j < 9; j++ {
            for k := j + 1; k < 9; k++ {
                if b[i] != side || b[j] != side || b[k] != side {
                    continue
                }
                ri, ci := i/3, i%3
                rj, cj := j/3, j%3
                rk, ck := k/3, k%3
                // collinear and spanning the grid
                if (rj-ri)*(ck-ci) == (rk-ri)*(cj-ci) && (rk-ri == 2 || ck-ci == 2 || ci-ck == 2) {
                    return true
                }
            }
        }
    }
    return false
}

func referenceOutcome(b Board, s Symbols) Outcome {
    cw, ow := referenceWon(b, s.Computer), referenceWon(b, s.Opponent)
    if cw {
        return ComputerWins
    }
    if ow {
        return OpponentWins
    }
    for _, c := range b {
        if c == Empty {
            return Nonterminal
        }
    }
    return Draw
}

func TestReferenceFindsExactlyEightLines(t *testing.T) {
    n := 0
    for i := 0; i < 9; i++ {
        for j := i + 1; j < 9; j++ {
            for k := j + 1; k < 9; k++ {
                var b Board
                b[i], b[j], b[k] = X, X, X
                if referenceWon(b, X) {
                    n++
                }
            }
        }
    }
    if n != len(Lines) {
        t.Fatalf("reference found %d lines, want %d", n, len(Lines))
    }
}

func TestTerminalValueAgainstFullGameTree(t *testing.T) {
    s := Symbols{Computer: O, Opponent: X}
    seen := map[Board]Outcome{}
    var walk func(b Board, turn Cell)
    walk = func(b Board, turn Cell) {
        if _, ok := seen[b]; ok {
            return
        }
        got := TerminalValue(b, s)
        if want := referenceOutcome(b, s); got != want {
            t.Fatalf("TerminalValue(%v) = %v, want %v", b, got, want)
        }
        seen[b] = got
        if got != Nonterminal {
            return
        }
        for _, i := range b.EmptyCells() {
            next := b
            next[i] = turn
            walk(next, turn.Other())
        }
    }
    walk(Board{}, X)

    counts := map[Outcome]int{}
    for _, o := range seen {
        counts[o]++
    }
    if len(seen) != 5478 {
        t.Fatalf("expected 5478 reachable boards, got %d", len(seen))
    }
    if counts[OpponentWins] != 626 || counts[ComputerWins] != 316 || counts[Draw] != 16 {
        t.Fatalf("unexpected terminal counts: %v", counts)
    }

    // swapping the binding swaps the win classes and nothing else
    swapped := Symbols{Computer: X, Opponent: O}
    for b, o := range seen {
        got := TerminalValue(b, swapped)
        switch o {
        case ComputerWins:
            o = OpponentWins
        case OpponentWins:
            o = ComputerWins
        }
        if got != o {
            t.Fatalf("swapped TerminalValue(%v) = %v, want %v", b, got, o)
        }
    }
}

func TestTerminalValueScenarios(t *testing.T) {
    tests := []struct {
        name  string
        board string
        human Cell
        want  Outcome
    }{
        {name: "diagonal win with empty cells, X is computer", board: "XOX|OXO|..X", human: O, want: ComputerWins},
        {name: "diagonal win with empty cells, X is opponent", board: "XOX|OXO|..X", human: X, want: OpponentWins},
        {name: "full drawn board", board: "XOX|OXO|OXO", human: X, want: Draw},
        {name: "full winning board is a win", board: "XXX|OOX|XOO", human: O, want: ComputerWins},
        {name: "empty board", board: "...|...|...", human: X, want: Nonterminal},
        {name: "two in a row", board: "XX.|OO.|...", human: X, want: Nonterminal},
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            b, err := ParseBoard(tc.board)
            if err != nil {
                t.Fatalf("ParseBoard: %v", err)
            }
            s, err := NewSymbols(tc.human)
            if err != nil {
                t.Fatalf("NewSymbols: %v", err)
            }
            if got := TerminalValue(b, s); got != tc.want {
                t.Fatalf("TerminalValue = %v, want %v", got, tc.want)
            }
        })
    }
}

func TestDrawnBoardHasNoWinner(t *testing.T) {
    b, _ := ParseBoard("XOX|OXO|OXO")
    if !b.IsFull() {
        t.Fatalf("expected full board")
    }
    if HasWon(b, X) || HasWon(b, O) {
        t.Fatalf("expected no winner on %v", b)
    }
    if HasWon(b, Empty) {
        t.Fatalf("Empty never wins")
    }
}

func TestNewSymbolsRejectsEmpty(t *testing.T) {
    if _, err := NewSymbols(Empty); err == nil {
        t.Fatalf("expected error for Empty opponent symbol")
    }
    s, err := NewSymbols(O)
    if err != nil || s.Computer != X || s.Opponent != O {
        t.Fatalf("unexpected binding %+v err=%v", s, err)
    }
}
