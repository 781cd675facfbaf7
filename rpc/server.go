package api

import (
	"fmt"
	"net/http"

	"github.com/Electron-Labs/quantum-test/quantum"
	"github.com/ethereum/go-ethereum/node"
	"github.com/ethereum/go-ethereum/rpc"
)

// NewHandler serves the loopback service over JSON-RPC. Requests must carry
// accessKey as a bearer token unless accessKey is empty.
func NewHandler(service *Loopback, accessKey string) (http.Handler, error) {
	handler := rpc.NewServer()
	apis := []rpc.API{{
		Namespace: quantum.Namespace,
		Service:   service,
	}}
	if err := node.RegisterApis(apis, nil, handler); err != nil {
		return nil, fmt.Errorf("error registering APIs: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/_health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		if accessKey != "" && r.Header.Get("Authorization") != "Bearer "+accessKey {
			http.Error(w, "invalid access key", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	}), nil
}
