package domain

// Game holds the current state of a match between a human opponent and the computer.
type Game struct {
    Board   Board
    Symbols Symbols
    Turn    Cell
    Outcome Outcome
    Over    bool
    Moves   int
}

// NewGame returns a new game with the human opponent to move.
func NewGame(s Symbols) Game {
    return Game{Symbols: s, Turn: s.Opponent}
}

// ComputerToMove reports whether the computer plays next.
func (g *Game) ComputerToMove() bool {
    return !g.Over && g.Turn == g.Symbols.Computer
}

// Play places the current turn's symbol on cell i (0..8).
func (g *Game) Play(i int) error {
    if g.Over {
        return ErrGameOver
    }
    if err := g.Board.Place(i, g.Turn); err != nil {
        return err
    }
    g.Moves++

    g.Outcome = TerminalValue(g.Board, g.Symbols)
    if g.Outcome != Nonterminal {
        g.Over = true
        return nil
    }

    // Flip turn
    g.Turn = g.Turn.Other()
    return nil
}
