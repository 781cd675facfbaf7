package runner

import (
	"context"

	"github.com/Electron-Labs/quantum-test/quantum"
)

// Client is the surface of the Quantum SDK the runner drives. *quantum.Quantum
// implements it.
type Client interface {
	CheckServerConnection(ctx context.Context) (bool, error)

	RegisterGnarkGroth16Circuit(ctx context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitGnarkGroth16Proof(ctx context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterSnarkJSGroth16Circuit(ctx context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitSnarkJSGroth16Proof(ctx context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterRisc0Circuit(ctx context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitRisc0Proof(ctx context.Context, receiptPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterSp1Circuit(ctx context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitSp1Proof(ctx context.Context, proofPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterPlonky2Circuit(ctx context.Context, commonDataPath, verifierOnlyDataPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitPlonky2Proof(ctx context.Context, proofPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterGnarkPlonkCircuit(ctx context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitGnarkPlonkProof(ctx context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterHalo2KZGCircuit(ctx context.Context, sg2Path, protocolPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitHalo2KZGProof(ctx context.Context, proofPath, instancesPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterHalo2KZGEvmCircuit(ctx context.Context, sg2Path, protocolPath string) (*quantum.RegisterCircuitResponse, error)
	SubmitHalo2KZGEvmProof(ctx context.Context, proofPath, instancesPath, circuitHash string) (*quantum.ProofResponse, error)
	RegisterNitroAttCircuit(ctx context.Context, pcr0Path string) (*quantum.RegisterCircuitResponse, error)
	SubmitNitroAttProof(ctx context.Context, attDocPath, circuitHash string) (*quantum.ProofResponse, error)
}

var _ Client = (*quantum.Quantum)(nil)
