package main

import (
    "os"

    "github.com/sirupsen/logrus"

    "github.com/jaminalder/perfect-tic-tac-toe/internal/cli"
)

func main() {
    logrus.SetFormatter(&logrus.TextFormatter{
        DisableTimestamp: true,
        PadLevelText:     true,
    })
    logrus.SetLevel(logrus.InfoLevel)

    if err := run(); err != nil {
        logrus.Fatal(err)
    }
}

func run() error {
    root := cli.Root()
    root.SetArgs(os.Args[1:])
    return root.Execute()
}
