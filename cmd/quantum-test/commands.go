package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	quantum_rpc "github.com/Electron-Labs/quantum-test/rpc"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

const credentialsHint = "inside your .env file, make sure that RPC_ENDPOINT and ACCESS_KEY are correct."

var CheckCredentialsCommand = &cli.Command{
	Name:  "check-credentials",
	Usage: "Verify RPC_ENDPOINT and ACCESS_KEY against the Quantum endpoint",
	Flags: rpcFlags,
	Action: func(cliCtx *cli.Context) error {
		q, err := newQuantum(cliCtx, storage.NewFileStorage("."))
		if err != nil {
			return fmt.Errorf("invalid API credentials: %w\n %s", err, credentialsHint)
		}
		defer q.Close()
		live, err := q.CheckServerConnection(cliCtx.Context)
		if err != nil {
			return fmt.Errorf("invalid API credentials: %w\n %s", err, credentialsHint)
		}
		if !live {
			return fmt.Errorf("failed to connect to Quantum server:\n %s", credentialsHint)
		}
		log.Info("API credentials verified successfully!")
		return nil
	},
}

var GenerateCommand = &cli.Command{
	Name:  "generate",
	Usage: "Prove the x**3 + x + 5 == y circuit and write gnark_groth16 or gnark_plonk artifacts",
	Flags: append([]cli.Flag{SchemeFlag, WitnessFlag}, storageFlags...),
	Action: func(cliCtx *cli.Context) error {
		cm, err := circuits.Lookup(stringFlag(cliCtx, SchemeFlag))
		if err != nil {
			return err
		}
		store, err := newStorage(cliCtx.Context, cliCtx)
		if err != nil {
			return err
		}
		return proving.Generate(cliCtx.Context, store, cm, stringFlag(cliCtx, CircuitPathFlag), cliCtx.Int64(WitnessFlag.Name))
	},
}

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run a loopback Quantum JSON-RPC service for dry runs",
	Flags: []cli.Flag{PortFlag, AccessKeyFlag},
	Action: func(cliCtx *cli.Context) error {
		handler, err := quantum_rpc.NewHandler(quantum_rpc.NewLoopback(), stringFlag(cliCtx, AccessKeyFlag))
		if err != nil {
			return err
		}
		server, err := runServer(handler, fmt.Sprintf(":%d", cliCtx.Int(PortFlag.Name)))
		if err != nil {
			return err
		}

		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
		<-interruptChannel

		return server.Shutdown(context.Background())
	},
}

func runServer(handler http.Handler, portAddr string) (*http.Server, error) {
	serv := &http.Server{Addr: portAddr, Handler: handler}
	log.Info("Starting HTTP server", "address", portAddr)
	go func() {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
		}
	}()
	return serv, nil
}
