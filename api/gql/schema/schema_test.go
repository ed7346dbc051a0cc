package schema

import (
	"context"
	"testing"

	"github.com/colima-services/reference-api/internal/vault"
	vaultapi "github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/suite"
)

type SchemaSuite struct {
	suite.Suite
}

type fakeLogical struct {
	secrets map[string]*vaultapi.Secret
}

func (f *fakeLogical) ReadWithContext(ctx context.Context, path string) (*vaultapi.Secret, error) {
	return f.secrets[path], nil
}

func (f *fakeLogical) ListWithContext(ctx context.Context, path string) (*vaultapi.Secret, error) {
	return f.secrets[path], nil
}

type fakeSys struct {
	health *vaultapi.HealthResponse
}

func (f *fakeSys) HealthWithContext(ctx context.Context) (*vaultapi.HealthResponse, error) {
	return f.health, nil
}

func (s *SchemaSuite) client() *vault.Client {
	return vault.NewWithTransport(
		vault.NewPathResolver("secret"),
		&fakeLogical{
			secrets: map[string]*vaultapi.Secret{
				"secret/metadata": {
					Data: map[string]interface{}{
						"keys": []interface{}{"postgres", "rabbitmq"},
					},
				},
			},
		},
		&fakeSys{
			health: &vaultapi.HealthResponse{
				Initialized: true,
				Version:     "1.15.0",
			},
		},
	)
}

func (s *SchemaSuite) TestSecretNames() {
	schema, err := graphqlSchema(s.client())
	s.NoError(err)

	result := execute(schema, "{ secretNames }")

	s.Empty(result.Errors)
	data := result.Data.(map[string]interface{})
	s.ElementsMatch(
		[]interface{}{"postgres", "rabbitmq"},
		data["secretNames"].([]interface{}),
	)
}

func (s *SchemaSuite) TestStoreHealth() {
	schema, err := graphqlSchema(s.client())
	s.NoError(err)

	result := execute(schema, "{ storeHealth { status version sealed } }")

	s.Empty(result.Errors)
	data := result.Data.(map[string]interface{})
	health := data["storeHealth"].(map[string]interface{})
	s.Equal("healthy", health["status"])
	s.Equal("1.15.0", health["version"])
	s.Equal(false, health["sealed"])
}

func TestSchemaSuite(t *testing.T) {
	suite.Run(t, new(SchemaSuite))
}
