package cli

import (
    "fmt"
    "strings"

    "github.com/sirupsen/logrus"
    "github.com/spf13/cobra"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
)

// Root builds the tictactoe command tree.
func Root() *cobra.Command {
    root := &cobra.Command{
        Use:   "tictactoe",
        Short: "Play tic-tac-toe against a perfect minimax engine",
        Args:  cobra.NoArgs,

        SilenceErrors: true,
        SilenceUsage:  true,

        PersistentPreRun: func(cmd *cobra.Command, args []string) {
            // If --trace flag is provided, set logging level to Trace.
            if cmd.Flag("trace").Changed {
                logrus.SetLevel(logrus.TraceLevel)
            }
        },
    }

    root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

    root.AddCommand(Serve())
    root.AddCommand(Play())
    root.AddCommand(Analyze())

    return root
}

func parseSymbol(v string) (domain.Cell, error) {
    switch strings.ToUpper(v) {
    case "":
        return domain.Empty, nil
    case "X":
        return domain.X, nil
    case "O":
        return domain.O, nil
    default:
        return domain.Empty, fmt.Errorf("symbol %q: %w", v, domain.ErrInvalidSymbol)
    }
}
