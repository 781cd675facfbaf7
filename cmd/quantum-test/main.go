package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const Version = "v0.0.1"

func main() {
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.LevelInfo, true)))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Unable to load .env", "error", err)
	}

	app := cli.NewApp()
	app.Flags = Flags
	app.Version = Version
	app.Name = "quantum-test"
	app.Usage = "Register a circuit and submit a proof to a Quantum RPC endpoint"
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool(DebugFlag.Name) {
			log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.LevelDebug, true)))
		}
		return nil
	}
	app.Action = curryMain(Version)
	app.Commands = []*cli.Command{
		CheckCredentialsCommand,
		GenerateCommand,
		ServeCommand,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Crit("Application failed", "error", err)
	}
}

func curryMain(version string) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		return Main(version, ctx)
	}
}
