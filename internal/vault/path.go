package vault

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMount is the KV v2 engine mount the reference stack provisions.
const DefaultMount = "secret"

var serviceNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// PathResolver maps logical service names onto the store's KV v2
// addressing scheme. Resolution is a pure function of the service name,
// so a different secret-store layout only requires swapping the
// resolver, not the client.
type PathResolver struct {
	mount string
}

// NewPathResolver returns a resolver rooted at the given engine mount.
// An empty mount falls back to DefaultMount.
func NewPathResolver(mount string) PathResolver {
	mount = strings.Trim(strings.TrimSpace(mount), "/")
	if mount == "" {
		mount = DefaultMount
	}
	return PathResolver{mount: mount}
}

// DataPath resolves a service name to the KV v2 data-plane path its
// secret bundle lives at.
func (r PathResolver) DataPath(service string) (string, error) {
	if err := validateServiceName(service); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/data/%s", r.mount, service), nil
}

// MetadataPath returns the KV v2 metadata path listing all secret names
// under the mount.
func (r PathResolver) MetadataPath() string {
	return fmt.Sprintf("%s/metadata", r.mount)
}

func validateServiceName(service string) error {
	if strings.TrimSpace(service) == "" {
		return ConfigError{Field: "service", Message: "service name is required"}
	}
	if !serviceNamePattern.MatchString(service) {
		return ConfigError{
			Field:   "service",
			Message: fmt.Sprintf("invalid service name %q, only alphanumerics, hyphens and underscores are allowed", service),
		}
	}
	return nil
}
