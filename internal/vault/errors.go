package vault

import "fmt"

// ConfigError indicates the client (or one of its inputs) was configured
// with an empty or invalid value. It is returned before any network
// attempt is made.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("vault config: %s: %s", e.Field, e.Message)
}

// NotFoundError indicates the store holds no secret data at the
// resolved path. Absence is always an error, never an empty bundle.
type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no secret data at %s", e.Path)
}

// FieldNotFoundError indicates the bundle was fetched successfully but
// the requested field is absent from it.
type FieldNotFoundError struct {
	Service string
	Field   string
}

func (e FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %s not found in secret %s", e.Field, e.Service)
}

// TransportError indicates the network exchange with the store itself
// failed: timeout, connection refused, or a non-success response. The
// underlying cause is preserved verbatim.
type TransportError struct {
	Op   string
	Path string
	Err  error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("vault %s %s: %v", e.Op, e.Path, e.Err)
}

func (e TransportError) Unwrap() error {
	return e.Err
}
