package runner

import (
	"context"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/quantum"
)

type RegisterHandler func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error)

type SubmitHandler func(ctx context.Context, c Client, p circuits.Paths, circuitHash string) (*quantum.ProofResponse, error)

type Handler struct {
	Register RegisterHandler
	Submit   SubmitHandler
}

var Handlers = map[string]Handler{
	circuits.GnarkGroth16Metadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterGnarkGroth16Circuit(ctx, p[circuits.RoleVKey])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitGnarkGroth16Proof(ctx, p[circuits.RoleProof], p[circuits.RolePis], hash)
		},
	},
	circuits.SnarkJSGroth16Metadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterSnarkJSGroth16Circuit(ctx, p[circuits.RoleVKey])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitSnarkJSGroth16Proof(ctx, p[circuits.RoleProof], p[circuits.RolePis], hash)
		},
	},
	circuits.Risc0Metadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterRisc0Circuit(ctx, p[circuits.RoleVKey])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitRisc0Proof(ctx, p[circuits.RoleReceipt], hash)
		},
	},
	circuits.Sp1Metadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterSp1Circuit(ctx, p[circuits.RoleVKey])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitSp1Proof(ctx, p[circuits.RoleProof], hash)
		},
	},
	circuits.Plonky2Metadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterPlonky2Circuit(ctx, p[circuits.RoleCommonData], p[circuits.RoleVerifierOnly])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitPlonky2Proof(ctx, p[circuits.RoleProof], hash)
		},
	},
	circuits.GnarkPlonkMetadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterGnarkPlonkCircuit(ctx, p[circuits.RoleVKey])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitGnarkPlonkProof(ctx, p[circuits.RoleProof], p[circuits.RolePis], hash)
		},
	},
	circuits.Halo2KZGMetadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterHalo2KZGCircuit(ctx, p[circuits.RoleSg2], p[circuits.RoleProtocol])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitHalo2KZGProof(ctx, p[circuits.RoleProof], p[circuits.RoleInstances], hash)
		},
	},
	circuits.Halo2KZGEvmMetadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterHalo2KZGEvmCircuit(ctx, p[circuits.RoleSg2], p[circuits.RoleProtocol])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitHalo2KZGEvmProof(ctx, p[circuits.RoleProof], p[circuits.RoleInstances], hash)
		},
	},
	circuits.NitroAttestationMetadata.Id: {
		Register: func(ctx context.Context, c Client, p circuits.Paths) (*quantum.RegisterCircuitResponse, error) {
			return c.RegisterNitroAttCircuit(ctx, p[circuits.RolePcr0])
		},
		Submit: func(ctx context.Context, c Client, p circuits.Paths, hash string) (*quantum.ProofResponse, error) {
			return c.SubmitNitroAttProof(ctx, p[circuits.RoleAttestationDoc], hash)
		},
	},
}
