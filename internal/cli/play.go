package cli

import (
    "github.com/MakeNowJust/heredoc/v2"
    "github.com/sirupsen/logrus"
    "github.com/spf13/cobra"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/console"
)

func Play() *cobra.Command {
    var symbol string
    cmd := &cobra.Command{
        Use:   "play",
        Short: "Play a game in the terminal",
        Args:  cobra.NoArgs,
        Long: heredoc.Doc(`play starts a game on the terminal. You always move first;
            cells are numbered 0 to 8 row by row from the top left.
            Without --symbol you are asked whether to play X or O.`),
        RunE: func(cmd *cobra.Command, args []string) error {
            human, err := parseSymbol(symbol)
            if err != nil {
                return err
            }
            d := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
            d.Human = human
            outcome, err := d.Run(cmd.Context())
            if err != nil {
                return err
            }
            logrus.WithField("outcome", outcome).Debug("game finished")
            return nil
        },
    }
    cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Symbol to play (X or O)")
    return cmd
}
