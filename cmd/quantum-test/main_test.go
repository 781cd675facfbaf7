package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	quantum_rpc "github.com/Electron-Labs/quantum-test/rpc"
	"github.com/Electron-Labs/quantum-test/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Flags = Flags
	app.Action = curryMain(Version)
	app.Commands = []*cli.Command{CheckCredentialsCommand, GenerateCommand}
	return app
}

func TestMainUnknownScheme(t *testing.T) {
	err := newApp().Run([]string{"quantum-test", "--scheme", "groth17", "--rpc-endpoint", "http://127.0.0.1:1", "--workdir", "/nonexistent"})
	assert.ErrorIs(t, err, circuits.ErrUnknownScheme)
}

func TestMainMissingScheme(t *testing.T) {
	err := newApp().Run([]string{"quantum-test", "--rpc-endpoint", "http://127.0.0.1:1"})
	assert.ErrorContains(t, err, "--scheme is required")
}

func TestMainUnreachable(t *testing.T) {
	err := newApp().Run([]string{"quantum-test", "--scheme", "sp1", "--rpc-endpoint", "http://127.0.0.1:1", "--rpc-timeout", "2s", "--workdir", t.TempDir()})
	assert.ErrorIs(t, err, runner.ErrServerUnreachable)
}

func TestMainLoopback(t *testing.T) {
	handler, err := quantum_rpc.NewHandler(quantum_rpc.NewLoopback(), "key")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	dir := t.TempDir()
	app := newApp()
	require.NoError(t, app.Run([]string{"quantum-test", "generate", "--scheme", "gnark_groth16", "--workdir", dir}))

	args := []string{"quantum-test", "--scheme", "gnark_groth16", "--preflight", "--strict",
		"--rpc-endpoint", server.URL, "--access-key", "key", "--workdir", dir}
	assert.NoError(t, newApp().Run(args))

	// The sp1 artifacts were never written, so registration fails.
	args = []string{"quantum-test", "--scheme", "sp1", "--strict",
		"--rpc-endpoint", server.URL, "--access-key", "key", "--workdir", dir}
	assert.Error(t, newApp().Run(args))

	// Without --strict the caught failure only gets logged.
	args = []string{"quantum-test", "--scheme", "sp1",
		"--rpc-endpoint", server.URL, "--access-key", "key", "--workdir", dir}
	assert.NoError(t, newApp().Run(args))
}

func TestCheckCredentials(t *testing.T) {
	handler, err := quantum_rpc.NewHandler(quantum_rpc.NewLoopback(), "key")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	assert.NoError(t, newApp().Run([]string{"quantum-test", "check-credentials", "--rpc-endpoint", server.URL, "--access-key", "key"}))

	err = newApp().Run([]string{"quantum-test", "check-credentials", "--rpc-endpoint", server.URL, "--access-key", "nope"})
	assert.ErrorContains(t, err, credentialsHint)
}

func TestNewStorageLocal(t *testing.T) {
	dir := t.TempDir()
	app := cli.NewApp()
	app.Flags = storageFlags
	app.Action = func(cliCtx *cli.Context) error {
		store, err := newStorage(context.Background(), cliCtx)
		if err != nil {
			return err
		}
		return storage.WriteAll(cliCtx.Context, store, "circuits/x.bin", []byte{1})
	}
	require.NoError(t, app.Run([]string{"quantum-test", "--workdir", dir}))

	contents, err := storage.ReadAll(context.Background(), storage.NewFileStorage(dir), "circuits/x.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, contents)
}

func TestFlagsBeforeSubcommand(t *testing.T) {
	handler, err := quantum_rpc.NewHandler(quantum_rpc.NewLoopback(), "key")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	assert.NoError(t, newApp().Run([]string{"quantum-test", "--rpc-endpoint", server.URL, "--access-key", "key", "check-credentials"}))

	err = newApp().Run([]string{"quantum-test", "--rpc-endpoint", "http://127.0.0.1:1", "--rpc-timeout", "2s", "check-credentials"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "RPC_ENDPOINT is not set")

	dir := t.TempDir()
	require.NoError(t, newApp().Run([]string{"quantum-test", "--workdir", dir, "--scheme", "gnark_plonk", "generate"}))
	_, err = storage.ReadAll(context.Background(), storage.NewFileStorage(dir), "circuits/gnark_plonk/circuit_data/vKey.bin")
	assert.NoError(t, err)
}
