package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/colima-services/reference-api/api"
	"github.com/colima-services/reference-api/api/rest/controller/secret"
	"github.com/colima-services/reference-api/pkg/env"
)

// ReferenceAPI is a minimal HTTP client for a locally
// running instance, used by the smoke test tooling.
type ReferenceAPI interface {
	Health() (*api.HealthResponse, error)
	Secrets() (*secret.ListResponse, error)
	Secret(service string) (*secret.GetResponse, error)
}

func Client() ReferenceAPI {
	return &client{}
}

type client struct {
}

func (c *client) Health() (*api.HealthResponse, error) {
	health := &api.HealthResponse{}
	return health, c.get("/health", health)
}

func (c *client) Secrets() (*secret.ListResponse, error) {
	list := &secret.ListResponse{}
	return list, c.get("/v1/vault/secrets", list)
}

func (c *client) Secret(service string) (*secret.GetResponse, error) {
	bundle := &secret.GetResponse{}
	return bundle, c.get(fmt.Sprintf("/v1/vault/secrets/%v", service), bundle)
}

func (c *client) get(path string, out interface{}) error {
	resp, err := http.Get(
		fmt.Sprintf("http://localhost:%v%v", env.Variables().Port, path),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(buf, out)
}
