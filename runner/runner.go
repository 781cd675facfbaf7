package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/quantum"
	"github.com/ethereum/go-ethereum/log"
)

var ErrServerUnreachable = errors.New("quantum server unreachable")

// PreflightFunc runs local checks on a scheme's artifacts before registration.
type PreflightFunc func(ctx context.Context, cm *circuits.Metadata, root string) error

type Runner struct {
	client    Client
	root      string
	preflight PreflightFunc
}

func NewRunner(client Client, root string) *Runner {
	if root == "" {
		root = circuits.DefaultRoot
	}
	return &Runner{client: client, root: root}
}

func (r *Runner) WithPreflight(preflight PreflightFunc) *Runner {
	r.preflight = preflight
	return r
}

type Result struct {
	Scheme        string
	CircuitHash   string
	ProofResponse *quantum.ProofResponse
	RegisterErr   error
	SubmitErr     error
	PreflightErr  error
}

// Err joins the failures that were caught during the run.
func (r *Result) Err() error {
	return errors.Join(r.PreflightErr, r.RegisterErr, r.SubmitErr)
}

// Run registers the scheme's circuit and submits its proof. Unknown schemes
// and an unreachable server are returned as errors; failures after that are
// logged and recorded on the Result.
func (r *Runner) Run(ctx context.Context, scheme string) (*Result, error) {
	cm, err := circuits.Lookup(scheme)
	if err != nil {
		return nil, err
	}
	handler, ok := Handlers[cm.Id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", circuits.ErrUnknownScheme, scheme)
	}

	live, err := r.client.CheckServerConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if !live {
		return nil, ErrServerUnreachable
	}

	result := &Result{Scheme: cm.Id}
	defer func() {
		hash := result.CircuitHash
		if hash == "" {
			hash = "undefined"
		}
		log.Info("Result", "combinedVKeyHash", hash)
		log.Info("Result", "proofResponse", result.ProofResponse)
	}()

	if r.preflight != nil {
		if result.PreflightErr = r.preflight(ctx, cm, r.root); result.PreflightErr != nil {
			log.Error("Preflight failed", "scheme", cm.Id, "error", result.PreflightErr)
			r.logFailures(result)
			return result, nil
		}
	}

	paths := cm.Paths(r.root)
	log.Info("Using circuit data", "scheme", cm.Id, "path", cm.Dir(r.root))
	registered, err := handler.Register(ctx, r.client, paths)
	if err == nil && registered.CircuitHash.Hash == "" {
		err = quantum.ErrMissingCircuitHash
	}
	if err != nil {
		result.RegisterErr = err
		log.Error("Circuit registration error", "scheme", cm.Id, "error", err)
		r.logFailures(result)
		return result, nil
	}
	result.CircuitHash = registered.CircuitHash.Hash
	log.Info("Circuit registered", "scheme", cm.Id, "combinedVKeyHash", result.CircuitHash)

	proofResponse, err := handler.Submit(ctx, r.client, paths, result.CircuitHash)
	if err != nil {
		result.SubmitErr = err
		log.Error("Proof submission error", "scheme", cm.Id, "error", err)
		r.logFailures(result)
		return result, nil
	}
	result.ProofResponse = proofResponse
	log.Info("Proof submitted", "scheme", cm.Id, "proofId", proofResponse.ProofId)
	return result, nil
}

func (r *Runner) logFailures(result *Result) {
	if result.CircuitHash == "" {
		log.Warn("Circuit Registration failed!")
	}
	if result.ProofResponse == nil {
		log.Warn("Proof Submission failed!")
	}
}
