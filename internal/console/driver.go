// Package console plays a game against the engine over a line-oriented terminal.
package console

import (
    "bufio"
    "context"
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/minimax"
    "github.com/muesli/termenv"
    "github.com/sirupsen/logrus"
)

// Driver alternates human and computer turns on one game.
type Driver struct {
    // Human is the symbol the human plays. When Empty the driver asks.
    Human domain.Cell

    in  *bufio.Scanner
    out *termenv.Output
    log logrus.FieldLogger
}

// New returns a driver reading moves from r and writing the board to w.
func New(r io.Reader, w io.Writer, opts ...termenv.OutputOption) *Driver {
    return &Driver{
        in:  bufio.NewScanner(r),
        out: termenv.NewOutput(w, opts...),
        log: logrus.StandardLogger(),
    }
}

// SetLogger replaces the logger used for engine diagnostics.
func (d *Driver) SetLogger(l logrus.FieldLogger) { d.log = l }

// Run plays one game to the end and returns its outcome. Running out of
// input before the game ends is io.ErrUnexpectedEOF.
func (d *Driver) Run(ctx context.Context) (domain.Outcome, error) {
    human := d.Human
    if human == domain.Empty {
        var err error
        if human, err = d.chooseSymbol(); err != nil {
            return domain.Nonterminal, err
        }
    }
    syms, err := domain.NewSymbols(human)
    if err != nil {
        return domain.Nonterminal, err
    }
    g := domain.NewGame(syms)

    for !g.Over {
        if err := ctx.Err(); err != nil {
            return domain.Nonterminal, err
        }
        if g.ComputerToMove() {
            idx, err := minimax.BestMove(&g.Board, g.Symbols)
            if err != nil {
                return domain.Nonterminal, err
            }
            d.log.WithFields(logrus.Fields{"cell": idx, "board": g.Board.String()}).Debug("computer move")
            if err := g.Play(idx); err != nil {
                return domain.Nonterminal, fmt.Errorf("computer move %d: %w", idx, err)
            }
            continue
        }
        d.printBoard(g.Board)
        if err := d.humanMove(&g); err != nil {
            return domain.Nonterminal, err
        }
    }

    d.printBoard(g.Board)
    fmt.Fprintln(d.out, d.message(g.Outcome))
    return g.Outcome, nil
}

func (d *Driver) readLine(prompt string) (string, error) {
    fmt.Fprint(d.out, prompt)
    if !d.in.Scan() {
        if err := d.in.Err(); err != nil {
            return "", err
        }
        return "", io.ErrUnexpectedEOF
    }
    return strings.TrimSpace(d.in.Text()), nil
}

func (d *Driver) chooseSymbol() (domain.Cell, error) {
    for {
        line, err := d.readLine("Choose your symbol (X or O): ")
        if err != nil {
            return domain.Empty, err
        }
        switch strings.ToUpper(line) {
        case "X":
            return domain.X, nil
        case "O":
            return domain.O, nil
        }
        fmt.Fprintln(d.out, "Invalid choice. Please choose X or O.")
    }
}

func (d *Driver) humanMove(g *domain.Game) error {
    for {
        line, err := d.readLine("Enter your move (0-8): ")
        if err != nil {
            return err
        }
        i, err := strconv.Atoi(line)
        if err == nil {
            err = g.Play(i)
        }
        if err == nil {
            return nil
        }
        fmt.Fprintln(d.out, "Invalid move. Try again.")
    }
}

func (d *Driver) cell(b domain.Board, i int) string {
    switch b[i] {
    case domain.X:
        return d.out.String("X").Foreground(d.out.Color("1")).Bold().String()
    case domain.O:
        return d.out.String("O").Foreground(d.out.Color("4")).Bold().String()
    default:
        return d.out.String(strconv.Itoa(i)).Faint().String()
    }
}

func (d *Driver) printBoard(b domain.Board) {
    for r := 0; r < 3; r++ {
        if r > 0 {
            fmt.Fprintln(d.out, "--+---+--")
        }
        fmt.Fprintf(d.out, "%s | %s | %s\n", d.cell(b, r*3), d.cell(b, r*3+1), d.cell(b, r*3+2))
    }
    fmt.Fprintln(d.out)
}

func (d *Driver) message(o domain.Outcome) string {
    switch o {
    case domain.OpponentWins:
        return "Congratulations! You win!"
    case domain.ComputerWins:
        return "AI wins! Better luck next time."
    default:
        return "It's a draw!"
    }
}
