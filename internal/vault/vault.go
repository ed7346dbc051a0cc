package vault

import (
	"context"
	"fmt"
	"strings"
	"time"

	vaultapi "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds each request to the store.
const DefaultTimeout = 5 * time.Second

// Config describes how to reach the secret store. It is fixed at
// construction; the client holds no other state.
type Config struct {
	Address string
	Token   string
	Mount   string
	Timeout time.Duration
}

// Bundle holds the current version of a secret: a mapping from field
// name to field value. It is built fresh on every fetch and never
// cached, so rotated credentials are picked up on the next call.
type Bundle map[string]any

// Field looks up a field and renders it as a string. Scalars are
// stringified the way the store serialized them.
func (b Bundle) Field(name string) (string, bool) {
	value, ok := b[name]
	if !ok {
		return "", false
	}
	return stringify(value), true
}

// Status enumerates the health states of the secret store.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// HealthStatus is a point-in-time snapshot of the store's health.
type HealthStatus struct {
	Status      Status `json:"status"`
	Initialized bool   `json:"initialized"`
	Sealed      bool   `json:"sealed"`
	Version     string `json:"version,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Client resolves versioned secret material from a HashiCorp Vault KV
// v2 engine. Every call is a single, stateless round trip: no retry, no
// backoff, no caching. Safe for concurrent use.
type Client struct {
	resolver PathResolver
	logical  logical
	sys      sys
}

// New builds a client from configuration, failing fast on an empty
// address or token before any network attempt.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, ConfigError{Field: "address", Message: "store address is required"}
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ConfigError{Field: "token", Message: "auth token is required"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientConfig := vaultapi.DefaultConfig()
	clientConfig.Address = cfg.Address
	clientConfig.Timeout = cfg.Timeout

	client, err := vaultapi.NewClient(clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, "create vault client")
	}
	client.SetToken(cfg.Token)

	return &Client{
		resolver: NewPathResolver(cfg.Mount),
		logical:  client.Logical(),
		sys:      client.Sys(),
	}, nil
}

// NewWithTransport constructs a client with preconfigured transport
// capabilities (useful in tests).
func NewWithTransport(resolver PathResolver, l logical, s sys) *Client {
	return &Client{resolver: resolver, logical: l, sys: s}
}

// Resolver exposes the client's path resolver.
func (c *Client) Resolver() PathResolver {
	return c.resolver
}

// FetchSecretBundle reads the secret bundle for a logical service name.
// An absent or empty secret is a NotFoundError; a failed exchange with
// the store is a TransportError.
func (c *Client) FetchSecretBundle(ctx context.Context, service string) (Bundle, error) {
	path, err := c.resolver.DataPath(service)
	if err != nil {
		return nil, err
	}

	secret, err := c.logical.ReadWithContext(ctx, path)
	if err != nil {
		return nil, TransportError{Op: "read", Path: path, Err: err}
	}

	data := unwrapBundle(secret)
	if len(data) == 0 {
		return nil, NotFoundError{Path: path}
	}

	return Bundle(data), nil
}

// FetchSecretField fetches the bundle for a service and extracts a
// single field from it. A bundle-fetch failure propagates verbatim; a
// missing field is a FieldNotFoundError carrying both names.
func (c *Client) FetchSecretField(ctx context.Context, service, field string) (string, error) {
	bundle, err := c.FetchSecretBundle(ctx, service)
	if err != nil {
		return "", err
	}

	value, ok := bundle.Field(field)
	if !ok {
		return "", FieldNotFoundError{Service: service, Field: field}
	}

	return value, nil
}

// ListSecretNames lists the child secret names at the given path,
// defaulting to the KV v2 metadata path. A store reporting no keys
// yields an empty slice, never nil.
func (c *Client) ListSecretNames(ctx context.Context, path ...string) ([]string, error) {
	p := c.resolver.MetadataPath()
	if len(path) > 0 && strings.TrimSpace(path[0]) != "" {
		p = path[0]
	}

	secret, err := c.logical.ListWithContext(ctx, p)
	if err != nil {
		return nil, TransportError{Op: "list", Path: p, Err: err}
	}

	names := listedKeys(secret)
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// CheckStoreHealth probes the store. It never returns an error: a
// failed probe is reported as an unhealthy status with the cause in the
// Error field, so aggregate health endpoints can report partial outages
// without crashing.
func (c *Client) CheckStoreHealth(ctx context.Context) HealthStatus {
	health, err := c.sys.HealthWithContext(ctx)
	if err != nil {
		return HealthStatus{Status: StatusUnhealthy, Error: err.Error()}
	}
	if health == nil {
		return HealthStatus{Status: StatusUnhealthy, Error: "empty health response"}
	}

	return HealthStatus{
		Status:      StatusHealthy,
		Initialized: health.Initialized,
		Sealed:      health.Sealed,
		Version:     health.Version,
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
