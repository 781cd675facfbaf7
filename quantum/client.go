package quantum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

const DefaultTimeout = 30 * time.Second

var ErrMissingCircuitHash = errors.New("missing circuit hash")

// Quantum talks to a Quantum verification endpoint. Artifact paths handed to
// the register and submit calls are resolved through store.
type Quantum struct {
	client  *rpc.Client
	store   storage.Storage
	timeout time.Duration
}

func NewQuantum(endpoint, accessKey string, store storage.Storage, timeout time.Duration) (*Quantum, error) {
	if endpoint == "" {
		return nil, errors.New("rpc endpoint not set")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client, err := rpc.DialOptions(context.Background(), endpoint, rpc.WithHeader("Authorization", "Bearer "+accessKey))
	if err != nil {
		return nil, fmt.Errorf("unable to dial %s: %w", endpoint, err)
	}
	return &Quantum{
		client:  client,
		store:   store,
		timeout: timeout,
	}, nil
}

func (q *Quantum) Close() {
	q.client.Close()
}

// CheckServerConnection reports whether the endpoint answers and accepts the
// access key.
func (q *Quantum) CheckServerConnection(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	var live bool
	if err := q.client.CallContext(ctx, &live, MethodPing); err != nil {
		return false, err
	}
	return live, nil
}

func (q *Quantum) RegisterGnarkGroth16Circuit(ctx context.Context, vKeyPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.GnarkGroth16Metadata.Id, circuits.Paths{
		circuits.RoleVKey: vKeyPath,
	})
}

func (q *Quantum) SubmitGnarkGroth16Proof(ctx context.Context, proofPath, pisPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.GnarkGroth16Metadata.Id, circuits.Paths{
		circuits.RoleProof: proofPath,
		circuits.RolePis:   pisPath,
	}, circuitHash)
}

func (q *Quantum) RegisterSnarkJSGroth16Circuit(ctx context.Context, vKeyPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.SnarkJSGroth16Metadata.Id, circuits.Paths{
		circuits.RoleVKey: vKeyPath,
	})
}

func (q *Quantum) SubmitSnarkJSGroth16Proof(ctx context.Context, proofPath, pisPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.SnarkJSGroth16Metadata.Id, circuits.Paths{
		circuits.RoleProof: proofPath,
		circuits.RolePis:   pisPath,
	}, circuitHash)
}

func (q *Quantum) RegisterRisc0Circuit(ctx context.Context, vKeyPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.Risc0Metadata.Id, circuits.Paths{
		circuits.RoleVKey: vKeyPath,
	})
}

func (q *Quantum) SubmitRisc0Proof(ctx context.Context, receiptPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.Risc0Metadata.Id, circuits.Paths{
		circuits.RoleReceipt: receiptPath,
	}, circuitHash)
}

func (q *Quantum) RegisterSp1Circuit(ctx context.Context, vKeyPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.Sp1Metadata.Id, circuits.Paths{
		circuits.RoleVKey: vKeyPath,
	})
}

func (q *Quantum) SubmitSp1Proof(ctx context.Context, proofPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.Sp1Metadata.Id, circuits.Paths{
		circuits.RoleProof: proofPath,
	}, circuitHash)
}

func (q *Quantum) RegisterPlonky2Circuit(ctx context.Context, commonDataPath, verifierOnlyDataPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.Plonky2Metadata.Id, circuits.Paths{
		circuits.RoleCommonData:   commonDataPath,
		circuits.RoleVerifierOnly: verifierOnlyDataPath,
	})
}

func (q *Quantum) SubmitPlonky2Proof(ctx context.Context, proofPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.Plonky2Metadata.Id, circuits.Paths{
		circuits.RoleProof: proofPath,
	}, circuitHash)
}

func (q *Quantum) RegisterGnarkPlonkCircuit(ctx context.Context, vKeyPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.GnarkPlonkMetadata.Id, circuits.Paths{
		circuits.RoleVKey: vKeyPath,
	})
}

func (q *Quantum) SubmitGnarkPlonkProof(ctx context.Context, proofPath, pisPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.GnarkPlonkMetadata.Id, circuits.Paths{
		circuits.RoleProof: proofPath,
		circuits.RolePis:   pisPath,
	}, circuitHash)
}

func (q *Quantum) RegisterHalo2KZGCircuit(ctx context.Context, sg2Path, protocolPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.Halo2KZGMetadata.Id, circuits.Paths{
		circuits.RoleSg2:      sg2Path,
		circuits.RoleProtocol: protocolPath,
	})
}

func (q *Quantum) SubmitHalo2KZGProof(ctx context.Context, proofPath, instancesPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.Halo2KZGMetadata.Id, circuits.Paths{
		circuits.RoleProof:     proofPath,
		circuits.RoleInstances: instancesPath,
	}, circuitHash)
}

func (q *Quantum) RegisterHalo2KZGEvmCircuit(ctx context.Context, sg2Path, protocolPath string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.Halo2KZGEvmMetadata.Id, circuits.Paths{
		circuits.RoleSg2:      sg2Path,
		circuits.RoleProtocol: protocolPath,
	})
}

func (q *Quantum) SubmitHalo2KZGEvmProof(ctx context.Context, proofPath, instancesPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.Halo2KZGEvmMetadata.Id, circuits.Paths{
		circuits.RoleProof:     proofPath,
		circuits.RoleInstances: instancesPath,
	}, circuitHash)
}

func (q *Quantum) RegisterNitroAttCircuit(ctx context.Context, pcr0Path string) (*RegisterCircuitResponse, error) {
	return q.registerCircuit(ctx, circuits.NitroAttestationMetadata.Id, circuits.Paths{
		circuits.RolePcr0: pcr0Path,
	})
}

func (q *Quantum) SubmitNitroAttProof(ctx context.Context, attDocPath, circuitHash string) (*ProofResponse, error) {
	return q.submitProof(ctx, circuits.NitroAttestationMetadata.Id, circuits.Paths{
		circuits.RoleAttestationDoc: attDocPath,
	}, circuitHash)
}

func (q *Quantum) GetProofStatus(ctx context.Context, proofId string) (*ProofResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	var resp ProofResponse
	if err := q.client.CallContext(ctx, &resp, MethodProofStatus, proofId); err != nil {
		return nil, fmt.Errorf("proof status %s: %w", proofId, err)
	}
	return &resp, nil
}

func (q *Quantum) registerCircuit(ctx context.Context, proofType string, paths circuits.Paths) (*RegisterCircuitResponse, error) {
	artifacts, err := q.readArtifacts(ctx, paths)
	if err != nil {
		return nil, err
	}
	log.Info("Registering circuit", "proofType", proofType, "artifacts", len(artifacts))
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	var resp RegisterCircuitResponse
	if err := q.client.CallContext(ctx, &resp, MethodRegisterCircuit, proofType, artifacts); err != nil {
		return nil, fmt.Errorf("register %s circuit: %w", proofType, err)
	}
	return &resp, nil
}

func (q *Quantum) submitProof(ctx context.Context, proofType string, paths circuits.Paths, circuitHash string) (*ProofResponse, error) {
	if circuitHash == "" {
		return nil, ErrMissingCircuitHash
	}
	artifacts, err := q.readArtifacts(ctx, paths)
	if err != nil {
		return nil, err
	}
	log.Info("Submitting proof", "proofType", proofType, "circuitHash", circuitHash)
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	var resp ProofResponse
	if err := q.client.CallContext(ctx, &resp, MethodSubmitProof, proofType, artifacts, circuitHash); err != nil {
		return nil, fmt.Errorf("submit %s proof: %w", proofType, err)
	}
	return &resp, nil
}

func (q *Quantum) readArtifacts(ctx context.Context, paths circuits.Paths) (Artifacts, error) {
	artifacts := make(Artifacts, len(paths))
	for role, key := range paths {
		log.Debug("Reading artifact", "role", role, "path", key)
		contents, err := storage.ReadAll(ctx, q.store, key)
		if err != nil {
			return nil, fmt.Errorf("read %s artifact %s: %w", role, key, err)
		}
		artifacts[role] = contents
	}
	return artifacts, nil
}
