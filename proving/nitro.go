package proving

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/fxamacker/cbor/v2"
)

var ErrPcr0Mismatch = errors.New("attestation document PCR0 does not match pcr0.bin")

// CoseSign1 is the COSE_Sign1 envelope an enclave attestation document comes in.
type CoseSign1 struct {
	_           struct{} `cbor:",toarray"`
	Protected   []byte
	Unprotected cbor.RawMessage
	Payload     []byte
	Signature   []byte
}

type AttestationDoc struct {
	ModuleId  string            `cbor:"module_id"`
	Digest    string            `cbor:"digest"`
	Timestamp uint64            `cbor:"timestamp"`
	PCRs      map[uint64][]byte `cbor:"pcrs"`
	PublicKey []byte            `cbor:"public_key,omitempty"`
	UserData  []byte            `cbor:"user_data,omitempty"`
	Nonce     []byte            `cbor:"nonce,omitempty"`
}

func DecodeAttestationDoc(data []byte) (*AttestationDoc, error) {
	var envelope CoseSign1
	if err := cbor.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode COSE_Sign1: %w", err)
	}
	var doc AttestationDoc
	if err := cbor.Unmarshal(envelope.Payload, &doc); err != nil {
		return nil, fmt.Errorf("decode attestation document: %w", err)
	}
	return &doc, nil
}

// CheckNitroAttestation compares PCR0 inside attestation_doc.bin with the
// pcr0.bin the circuit is registered with. The signature is not checked.
func CheckNitroAttestation(ctx context.Context, store storage.Storage, paths circuits.Paths) error {
	pcr0, err := storage.ReadAll(ctx, store, paths[circuits.RolePcr0])
	if err != nil {
		return err
	}
	raw, err := storage.ReadAll(ctx, store, paths[circuits.RoleAttestationDoc])
	if err != nil {
		return err
	}
	doc, err := DecodeAttestationDoc(raw)
	if err != nil {
		return err
	}
	docPcr0, ok := doc.PCRs[0]
	if !ok {
		return fmt.Errorf("attestation document has no PCR0")
	}
	if !bytes.Equal(docPcr0, pcr0) {
		return ErrPcr0Mismatch
	}
	return nil
}
