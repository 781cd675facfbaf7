package proving

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/ethereum/go-ethereum/log"
)

// Generated holds the serialized artifacts of a freshly proven circuit.
type Generated struct {
	VKey  []byte
	Proof []byte
	Pis   []byte
}

// Generate proves the cubic circuit for x with the gnark backend cm names and
// writes vKey.bin, proof.bin and pis.json under cm.Dir(root).
func Generate(ctx context.Context, store storage.Storage, cm *circuits.Metadata, root string, x int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v, stack: %s", r, string(debug.Stack()))
		}
	}()

	assignment := &circuits.CubicCircuit{X: x, Y: x*x*x + x + 5}
	var g *Generated
	switch cm.Id {
	case circuits.GnarkGroth16Metadata.Id:
		g, err = generateGroth16(assignment)
	case circuits.GnarkPlonkMetadata.Id:
		g, err = generatePlonk(assignment)
	default:
		return fmt.Errorf("no generator for scheme %s", cm.Id)
	}
	if err != nil {
		return err
	}

	paths := cm.Paths(root)
	for _, t := range []struct {
		role     string
		contents []byte
	}{
		{circuits.RoleVKey, g.VKey},
		{circuits.RoleProof, g.Proof},
		{circuits.RolePis, g.Pis},
	} {
		log.Info("Writing artifact", "scheme", cm.Id, "path", paths[t.role], "size", len(t.contents))
		if err := storage.WriteAll(ctx, store, paths[t.role], t.contents); err != nil {
			return fmt.Errorf("write %s: %w", paths[t.role], err)
		}
	}
	return nil
}

func generateGroth16(assignment *circuits.CubicCircuit) (*Generated, error) {
	var circuit circuits.CubicCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, err
	}
	log.Info("Running groth16 setup", "constraints", ccs.GetNbConstraints())
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, err
	}
	w, publicWitness, err := witnesses(assignment)
	if err != nil {
		return nil, err
	}
	proof, err := groth16.Prove(ccs, pk, w)
	if err != nil {
		return nil, err
	}
	if err = groth16.Verify(proof, vk, publicWitness); err != nil {
		return nil, err
	}
	return serialize(vk, proof, publicWitness)
}

func generatePlonk(assignment *circuits.CubicCircuit) (*Generated, error) {
	var circuit circuits.CubicCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &circuit)
	if err != nil {
		return nil, err
	}
	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, err
	}
	log.Info("Running plonk setup", "constraints", ccs.GetNbConstraints())
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, err
	}
	w, publicWitness, err := witnesses(assignment)
	if err != nil {
		return nil, err
	}
	proof, err := plonk.Prove(ccs, pk, w)
	if err != nil {
		return nil, err
	}
	if err = plonk.Verify(proof, vk, publicWitness); err != nil {
		return nil, err
	}
	return serialize(vk, proof, publicWitness)
}

func witnesses(assignment frontend.Circuit) (witness.Witness, witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, err
	}
	publicWitness, err := w.Public()
	if err != nil {
		return nil, nil, err
	}
	return w, publicWitness, nil
}

func serialize(vk, proof io.WriterTo, publicWitness witness.Witness) (*Generated, error) {
	var vkBuf, proofBuf bytes.Buffer
	if _, err := vk.WriteTo(&vkBuf); err != nil {
		return nil, err
	}
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, err
	}
	pisVector, ok := publicWitness.Vector().(fr.Vector)
	if !ok {
		return nil, fmt.Errorf("unexpected public witness type %T", publicWitness.Vector())
	}
	pis := make([]string, len(pisVector))
	for i := range pisVector {
		pis[i] = pisVector[i].String()
	}
	pisJson, err := json.MarshalIndent(pis, "", " ")
	if err != nil {
		return nil, err
	}
	return &Generated{
		VKey:  vkBuf.Bytes(),
		Proof: proofBuf.Bytes(),
		Pis:   pisJson,
	}, nil
}
