package runner

import (
	"context"
	"strings"

	"github.com/Electron-Labs/quantum-test/quantum"
)

type call struct {
	method string
	args   []string
}

// mockClient records every SDK call it receives.
type mockClient struct {
	live        bool
	liveErr     error
	registerErr error
	submitErr   error
	hash        string
	calls       []call
}

func newMockClient() *mockClient {
	return &mockClient{live: true, hash: "0xc1"}
}

func (m *mockClient) methods() []string {
	methods := make([]string, len(m.calls))
	for i, c := range m.calls {
		methods[i] = c.method
	}
	return methods
}

func (m *mockClient) CheckServerConnection(context.Context) (bool, error) {
	m.calls = append(m.calls, call{method: "CheckServerConnection"})
	return m.live, m.liveErr
}

func (m *mockClient) register(method string, args ...string) (*quantum.RegisterCircuitResponse, error) {
	m.calls = append(m.calls, call{method: method, args: args})
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &quantum.RegisterCircuitResponse{CircuitHash: quantum.CircuitHash{Hash: m.hash}}, nil
}

func (m *mockClient) submit(method string, args ...string) (*quantum.ProofResponse, error) {
	m.calls = append(m.calls, call{method: method, args: args})
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return &quantum.ProofResponse{ProofId: "0xp1:" + strings.Join(args, ",")}, nil
}

func (m *mockClient) RegisterGnarkGroth16Circuit(_ context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterGnarkGroth16Circuit", vKeyPath)
}

func (m *mockClient) SubmitGnarkGroth16Proof(_ context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitGnarkGroth16Proof", proofPath, pisPath, circuitHash)
}

func (m *mockClient) RegisterSnarkJSGroth16Circuit(_ context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterSnarkJSGroth16Circuit", vKeyPath)
}

func (m *mockClient) SubmitSnarkJSGroth16Proof(_ context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitSnarkJSGroth16Proof", proofPath, pisPath, circuitHash)
}

func (m *mockClient) RegisterRisc0Circuit(_ context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterRisc0Circuit", vKeyPath)
}

func (m *mockClient) SubmitRisc0Proof(_ context.Context, receiptPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitRisc0Proof", receiptPath, circuitHash)
}

func (m *mockClient) RegisterSp1Circuit(_ context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterSp1Circuit", vKeyPath)
}

func (m *mockClient) SubmitSp1Proof(_ context.Context, proofPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitSp1Proof", proofPath, circuitHash)
}

func (m *mockClient) RegisterPlonky2Circuit(_ context.Context, commonDataPath, verifierOnlyDataPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterPlonky2Circuit", commonDataPath, verifierOnlyDataPath)
}

func (m *mockClient) SubmitPlonky2Proof(_ context.Context, proofPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitPlonky2Proof", proofPath, circuitHash)
}

func (m *mockClient) RegisterGnarkPlonkCircuit(_ context.Context, vKeyPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterGnarkPlonkCircuit", vKeyPath)
}

func (m *mockClient) SubmitGnarkPlonkProof(_ context.Context, proofPath, pisPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitGnarkPlonkProof", proofPath, pisPath, circuitHash)
}

func (m *mockClient) RegisterHalo2KZGCircuit(_ context.Context, sg2Path, protocolPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterHalo2KZGCircuit", sg2Path, protocolPath)
}

func (m *mockClient) SubmitHalo2KZGProof(_ context.Context, proofPath, instancesPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitHalo2KZGProof", proofPath, instancesPath, circuitHash)
}

func (m *mockClient) RegisterHalo2KZGEvmCircuit(_ context.Context, sg2Path, protocolPath string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterHalo2KZGEvmCircuit", sg2Path, protocolPath)
}

func (m *mockClient) SubmitHalo2KZGEvmProof(_ context.Context, proofPath, instancesPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitHalo2KZGEvmProof", proofPath, instancesPath, circuitHash)
}

func (m *mockClient) RegisterNitroAttCircuit(_ context.Context, pcr0Path string) (*quantum.RegisterCircuitResponse, error) {
	return m.register("RegisterNitroAttCircuit", pcr0Path)
}

func (m *mockClient) SubmitNitroAttProof(_ context.Context, attDocPath, circuitHash string) (*quantum.ProofResponse, error) {
	return m.submit("SubmitNitroAttProof", attDocPath, circuitHash)
}
