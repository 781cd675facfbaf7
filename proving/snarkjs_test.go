package proving

import (
	"context"
	"testing"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snarkJSVK = `{
 "protocol": "groth16",
 "curve": "bn128",
 "nPublic": 1,
 "vk_alpha_1": ["1", "2", "1"],
 "vk_beta_2": [["1", "2"], ["3", "4"], ["1", "0"]],
 "vk_gamma_2": [["1", "2"], ["3", "4"], ["1", "0"]],
 "vk_delta_2": [["1", "2"], ["3", "4"], ["1", "0"]],
 "IC": [["1", "2", "1"], ["3", "4", "1"]]
}`

const snarkJSProof = `{
 "pi_a": ["1", "2", "1"],
 "pi_b": [["1", "2"], ["3", "4"], ["1", "0"]],
 "pi_c": ["1", "2", "1"],
 "protocol": "groth16",
 "curve": "bn128"
}`

func writeSnarkJS(t *testing.T, store storage.Storage, vk, proof, pis string) {
	paths := circuits.SnarkJSGroth16Metadata.Paths(circuits.DefaultRoot)
	ctx := context.Background()
	require.NoError(t, storage.WriteAll(ctx, store, paths[circuits.RoleVKey], []byte(vk)))
	require.NoError(t, storage.WriteAll(ctx, store, paths[circuits.RoleProof], []byte(proof)))
	require.NoError(t, storage.WriteAll(ctx, store, paths[circuits.RolePis], []byte(pis)))
}

func TestCheckSnarkJSGroth16(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	writeSnarkJS(t, store, snarkJSVK, snarkJSProof, `["33"]`)
	assert.NoError(t, Preflight(context.Background(), store, circuits.SnarkJSGroth16Metadata, circuits.DefaultRoot))
}

func TestCheckSnarkJSGroth16PublicCount(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	writeSnarkJS(t, store, snarkJSVK, snarkJSProof, `["33", "34"]`)
	err := Preflight(context.Background(), store, circuits.SnarkJSGroth16Metadata, circuits.DefaultRoot)
	assert.ErrorContains(t, err, "got 2 public inputs")
}

func TestCheckSnarkJSGroth16Protocol(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	writeSnarkJS(t, store, `{"protocol": "plonk", "nPublic": 1}`, snarkJSProof, `["33"]`)
	err := Preflight(context.Background(), store, circuits.SnarkJSGroth16Metadata, circuits.DefaultRoot)
	assert.ErrorContains(t, err, "want groth16")
}

func TestCheckSnarkJSGroth16Malformed(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	writeSnarkJS(t, store, snarkJSVK, `{"pi_a": `, `["33"]`)
	err := Preflight(context.Background(), store, circuits.SnarkJSGroth16Metadata, circuits.DefaultRoot)
	assert.ErrorContains(t, err, "decode")
}
