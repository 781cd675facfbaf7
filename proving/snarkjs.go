package proving

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
)

type SnarkJSProof struct {
	A        []string   `json:"pi_a"`
	B        [][]string `json:"pi_b"`
	C        []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
}

type SnarkJSVK struct {
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
	NPublic  int        `json:"nPublic"`
	Alpha    []string   `json:"vk_alpha_1"`
	Beta     [][]string `json:"vk_beta_2"`
	Gamma    [][]string `json:"vk_gamma_2"`
	Delta    [][]string `json:"vk_delta_2"`
	IC       [][]string `json:"IC"`
}

// CheckSnarkJSGroth16 makes sure verification_key.json, proof.json and
// public.json describe the same groth16 circuit.
func CheckSnarkJSGroth16(ctx context.Context, store storage.Storage, paths circuits.Paths) error {
	var vk SnarkJSVK
	var proof SnarkJSProof
	var pis []string
	for _, t := range []struct {
		role string
		v    any
	}{
		{circuits.RoleVKey, &vk},
		{circuits.RoleProof, &proof},
		{circuits.RolePis, &pis},
	} {
		contents, err := storage.ReadAll(ctx, store, paths[t.role])
		if err != nil {
			return err
		}
		if err = json.Unmarshal(contents, t.v); err != nil {
			return fmt.Errorf("decode %s: %w", paths[t.role], err)
		}
	}

	if vk.Protocol != "groth16" {
		return fmt.Errorf("verification key protocol %q, want groth16", vk.Protocol)
	}
	if proof.Protocol != "" && proof.Protocol != vk.Protocol {
		return fmt.Errorf("proof protocol %q does not match verification key", proof.Protocol)
	}
	if proof.Curve != "" && proof.Curve != vk.Curve {
		return fmt.Errorf("proof curve %q does not match verification key curve %q", proof.Curve, vk.Curve)
	}
	if len(pis) != vk.NPublic {
		return fmt.Errorf("got %d public inputs, verification key expects %d", len(pis), vk.NPublic)
	}
	if len(vk.IC) != vk.NPublic+1 {
		return fmt.Errorf("verification key has %d IC points for %d public inputs", len(vk.IC), vk.NPublic)
	}
	if len(proof.A) == 0 || len(proof.B) == 0 || len(proof.C) == 0 {
		return fmt.Errorf("proof is missing curve points")
	}
	return nil
}
