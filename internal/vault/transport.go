package vault

import (
	"context"

	vaultapi "github.com/hashicorp/vault/api"
)

// logical is the slice of the Vault API the client needs for reads and
// lists. Satisfied by *vaultapi.Logical and by fakes in tests.
type logical interface {
	ReadWithContext(ctx context.Context, path string) (*vaultapi.Secret, error)
	ListWithContext(ctx context.Context, path string) (*vaultapi.Secret, error)
}

// sys is the slice of the Vault API the client needs for health probes.
type sys interface {
	HealthWithContext(ctx context.Context) (*vaultapi.HealthResponse, error)
}

// unwrapBundle peels the KV v2 response envelope (the field mapping is
// nested under "data" inside a versioned metadata wrapper). Flat KV v1
// payloads pass through untouched, so a different engine can be mounted
// without touching client logic.
func unwrapBundle(secret *vaultapi.Secret) map[string]any {
	if secret == nil || secret.Data == nil {
		return nil
	}
	if nested, ok := secret.Data["data"].(map[string]any); ok {
		return nested
	}
	return secret.Data
}

// listedKeys extracts the child names from a list response. A store
// reporting no keys yields nil, which the client normalizes to an empty
// slice.
func listedKeys(secret *vaultapi.Secret) []string {
	if secret == nil || secret.Data == nil {
		return nil
	}
	raw, ok := secret.Data["keys"].([]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		if name, ok := k.(string); ok {
			keys = append(keys, name)
		}
	}
	return keys
}
