package proving

import (
	"context"
	"fmt"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/proving/storage"
	"github.com/ethereum/go-ethereum/log"
)

type Check func(ctx context.Context, store storage.Storage, paths circuits.Paths) error

// Checks holds the local sanity checks for schemes whose artifacts can be
// inspected here. Every other scheme only gets the presence check.
var Checks = map[string]Check{
	circuits.GnarkGroth16Metadata.Id:     VerifyGnarkGroth16,
	circuits.GnarkPlonkMetadata.Id:       VerifyGnarkPlonk,
	circuits.SnarkJSGroth16Metadata.Id:   CheckSnarkJSGroth16,
	circuits.NitroAttestationMetadata.Id: CheckNitroAttestation,
}

func Preflight(ctx context.Context, store storage.Storage, cm *circuits.Metadata, root string) error {
	paths := cm.Paths(root)
	for _, a := range cm.Artifacts() {
		reader, err := store.Reader(ctx, paths[a.Role])
		if err != nil {
			return fmt.Errorf("%s artifact: %w", a.Role, err)
		}
		_ = reader.Close()
	}

	check, ok := Checks[cm.Id]
	if !ok {
		log.Info("Artifacts present, no local check for scheme", "scheme", cm.Id)
		return nil
	}
	if err := check(ctx, store, paths); err != nil {
		return fmt.Errorf("%s preflight: %w", cm.Id, err)
	}
	log.Info("Preflight passed", "scheme", cm.Id)
	return nil
}
