package cli

import (
    "fmt"

    "github.com/MakeNowJust/heredoc/v2"
    "github.com/spf13/cobra"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/minimax"
)

func Analyze() *cobra.Command {
    var symbol string
    cmd := &cobra.Command{
        Use:   "analyze <board>",
        Short: "Score every move of a position",
        Args:  cobra.ExactArgs(1),
        Long: heredoc.Doc(`analyze prints the exact minimax score of every empty cell
            for the side to move, followed by the move the engine picks.

            The board is 9 characters in row-major order using X, O and
            '.' for empty cells, optionally split with '|' or '/', for
            example "XX./OO./...". The side to move is the one with
            fewer marks (X when equal) unless --symbol is given.`),
        RunE: func(cmd *cobra.Command, args []string) error {
            b, err := domain.ParseBoard(args[0])
            if err != nil {
                return err
            }
            side, err := parseSymbol(symbol)
            if err != nil {
                return err
            }
            if side == domain.Empty {
                side = domain.X
                if b.Count(domain.X) > b.Count(domain.O) {
                    side = domain.O
                }
            }
            s := domain.Symbols{Computer: side, Opponent: side.Other()}

            moves, err := minimax.Analyze(&b, s)
            if err != nil {
                return fmt.Errorf("analyze %s: %w", b, err)
            }
            out := cmd.OutOrStdout()
            for _, m := range moves {
                fmt.Fprintf(out, "%d: %s\n", m.Index, m.Score)
            }
            best, err := minimax.BestMove(&b, s)
            if err != nil {
                return err
            }
            fmt.Fprintf(out, "best move for %s: %d\n", side, best)
            return nil
        },
    }
    cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Side to move (X or O)")
    return cmd
}
