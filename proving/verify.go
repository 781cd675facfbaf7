package proving

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/ethereum/go-ethereum/log"
)

// VerifyGnarkGroth16 checks a gnark_groth16 vKey.bin/proof.bin/pis.json triple
// locally before it is sent anywhere.
func VerifyGnarkGroth16(ctx context.Context, store storage.Storage, paths circuits.Paths) error {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	proof := groth16.NewProof(ecc.BN254)
	publicWitness, err := load(ctx, store, paths, vk, proof)
	if err != nil {
		return err
	}
	return groth16.Verify(proof, vk, publicWitness)
}

func VerifyGnarkPlonk(ctx context.Context, store storage.Storage, paths circuits.Paths) error {
	vk := plonk.NewVerifyingKey(ecc.BN254)
	proof := plonk.NewProof(ecc.BN254)
	publicWitness, err := load(ctx, store, paths, vk, proof)
	if err != nil {
		return err
	}
	return plonk.Verify(proof, vk, publicWitness)
}

func load(ctx context.Context, store storage.Storage, paths circuits.Paths, vk, proof io.ReaderFrom) (witness.Witness, error) {
	types := []struct {
		role       string
		readerFrom io.ReaderFrom
	}{
		{circuits.RoleVKey, vk},
		{circuits.RoleProof, proof},
	}
	for _, t := range types {
		log.Debug("Loading artifact", "role", t.role, "path", paths[t.role])
		contents, err := storage.ReadAll(ctx, store, paths[t.role])
		if err != nil {
			return nil, err
		}
		if _, err = t.readerFrom.ReadFrom(bytes.NewReader(contents)); err != nil {
			return nil, fmt.Errorf("decode %s: %w", paths[t.role], err)
		}
	}

	contents, err := storage.ReadAll(ctx, store, paths[circuits.RolePis])
	if err != nil {
		return nil, err
	}
	var pis []string
	if err = json.Unmarshal(contents, &pis); err != nil {
		return nil, fmt.Errorf("decode %s: %w", paths[circuits.RolePis], err)
	}
	return publicWitness(pis)
}

func publicWitness(pis []string) (witness.Witness, error) {
	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	values := make(chan any, len(pis))
	for _, p := range pis {
		values <- p
	}
	close(values)
	if err = w.Fill(len(pis), 0, values); err != nil {
		return nil, err
	}
	return w, nil
}
