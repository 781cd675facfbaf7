package quantum

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Namespace of the Quantum JSON-RPC methods.
const Namespace = "quantum"

const (
	MethodPing            = Namespace + "_ping"
	MethodRegisterCircuit = Namespace + "_registerCircuit"
	MethodSubmitProof     = Namespace + "_submitProof"
	MethodProofStatus     = Namespace + "_proofStatus"
)

// Artifacts carries raw artifact contents keyed by role.
type Artifacts map[string]hexutil.Bytes

type CircuitHash struct {
	Hash string `json:"hash"`
}

type RegisterCircuitResponse struct {
	CircuitHash CircuitHash `json:"circuitHash"`
}

type ProofResponse struct {
	ProofId string `json:"proofId"`
	Status  string `json:"status,omitempty"`
}

func (p *ProofResponse) String() string {
	if p == nil {
		return "undefined"
	}
	if p.Status == "" {
		return fmt.Sprintf("{proofId: %s}", p.ProofId)
	}
	return fmt.Sprintf("{proofId: %s, status: %s}", p.ProofId, p.Status)
}
