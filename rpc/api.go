package api

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/quantum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
)

var (
	ErrUnknownCircuit  = errors.New("circuit not registered")
	ErrSchemeMismatch  = errors.New("circuit registered for a different proof type")
	ErrMissingArtifact = errors.New("missing artifact")
	ErrUnknownProof    = errors.New("proof not submitted")
)

// Loopback answers the quantum namespace for dry runs. It checks that every
// artifact a scheme needs is present and hands out Keccak256 identifiers; it
// does not verify anything.
type Loopback struct {
	lock     sync.Mutex
	circuits map[string]string
	proofs   map[string]string
}

func NewLoopback() *Loopback {
	return &Loopback{
		circuits: make(map[string]string),
		proofs:   make(map[string]string),
	}
}

func (l *Loopback) Ping() bool {
	return true
}

func (l *Loopback) RegisterCircuit(proofType string, artifacts quantum.Artifacts) (*quantum.RegisterCircuitResponse, error) {
	log.Info("Handling quantum_registerCircuit call", "proofType", proofType, "artifacts", len(artifacts))
	cm, err := circuits.Lookup(proofType)
	if err != nil {
		return nil, err
	}
	if err := requireArtifacts(cm.Registration, artifacts); err != nil {
		return nil, err
	}

	hash := digest([]byte(proofType), artifacts)
	l.lock.Lock()
	l.circuits[hash] = proofType
	l.lock.Unlock()

	return &quantum.RegisterCircuitResponse{
		CircuitHash: quantum.CircuitHash{Hash: hash},
	}, nil
}

func (l *Loopback) SubmitProof(proofType string, artifacts quantum.Artifacts, circuitHash string) (*quantum.ProofResponse, error) {
	log.Info("Handling quantum_submitProof call", "proofType", proofType, "circuitHash", circuitHash)
	cm, err := circuits.Lookup(proofType)
	if err != nil {
		return nil, err
	}
	if err := requireArtifacts(cm.Submission, artifacts); err != nil {
		return nil, err
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	registered, ok := l.circuits[circuitHash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCircuit, circuitHash)
	}
	if registered != proofType {
		return nil, fmt.Errorf("%w: %s", ErrSchemeMismatch, registered)
	}

	proofId := digest([]byte(circuitHash), artifacts)
	l.proofs[proofId] = circuitHash
	return &quantum.ProofResponse{
		ProofId: proofId,
		Status:  "registered",
	}, nil
}

func (l *Loopback) ProofStatus(proofId string) (*quantum.ProofResponse, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if _, ok := l.proofs[proofId]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProof, proofId)
	}
	return &quantum.ProofResponse{
		ProofId: proofId,
		Status:  "registered",
	}, nil
}

func requireArtifacts(expected []circuits.Artifact, artifacts quantum.Artifacts) error {
	for _, a := range expected {
		if len(artifacts[a.Role]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingArtifact, a.Role)
		}
	}
	return nil
}

func digest(prefix []byte, artifacts quantum.Artifacts) string {
	roles := make([]string, 0, len(artifacts))
	for role := range artifacts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	data := [][]byte{prefix}
	for _, role := range roles {
		data = append(data, []byte(role), crypto.Keccak256(artifacts[role]))
	}
	return hexutil.Encode(crypto.Keccak256(data...))
}
