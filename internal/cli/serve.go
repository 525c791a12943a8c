package cli

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/MakeNowJust/heredoc/v2"
    "github.com/sirupsen/logrus"
    "github.com/spf13/cobra"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/app"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/web"
)

func Serve() *cobra.Command {
    var addr string
    cmd := &cobra.Command{
        Use:   "serve",
        Short: "Serve the web interface",
        Args:  cobra.NoArgs,
        Long: heredoc.Doc(`serve starts an HTTP server where each visitor can start a
            game against the engine. The first visitor of a game page
            claims the human seat; later visitors watch the board update
            live over server-sent events.`),
        RunE: func(cmd *cobra.Command, args []string) error {
            ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
            defer stop()

            srv := &http.Server{
                Addr:              addr,
                Handler:           web.NewServer(app.NewService()),
                ReadHeaderTimeout: 5 * time.Second,
            }
            errc := make(chan error, 1)
            go func() {
                logrus.Infof("listening on %s", addr)
                errc <- srv.ListenAndServe()
            }()

            select {
            case err := <-errc:
                return err
            case <-ctx.Done():
            }
            logrus.Info("shutting down")
            shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
            defer cancel()
            if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
                return err
            }
            return nil
        },
    }
    cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
    return cmd
}
