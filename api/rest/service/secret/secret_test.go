package secret

import (
	"context"
	"errors"
	"testing"

	"github.com/colima-services/reference-api/internal/vault"
	vaultapi "github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/suite"
)

type fakeLogical struct {
	readResponse *vaultapi.Secret
	readErr      error
	listResponse *vaultapi.Secret
	listErr      error
}

func (f *fakeLogical) ReadWithContext(_ context.Context, _ string) (*vaultapi.Secret, error) {
	return f.readResponse, f.readErr
}

func (f *fakeLogical) ListWithContext(_ context.Context, _ string) (*vaultapi.Secret, error) {
	return f.listResponse, f.listErr
}

type fakeSys struct {
	response *vaultapi.HealthResponse
	err      error
}

func (f *fakeSys) HealthWithContext(_ context.Context) (*vaultapi.HealthResponse, error) {
	return f.response, f.err
}

func client(l *fakeLogical, sy *fakeSys) *vault.Client {
	return vault.NewWithTransport(vault.NewPathResolver(""), l, sy)
}

type SecretServiceSuite struct {
	suite.Suite
}

func TestSecretServiceSuite(t *testing.T) {
	suite.Run(t, new(SecretServiceSuite))
}

func (s *SecretServiceSuite) TestBundle() {
	l := &fakeLogical{readResponse: &vaultapi.Secret{Data: map[string]any{
		"data": map[string]any{"user": "svc", "password": "p@ss"},
	}}}

	bundle, err := Service(context.Background(), client(l, nil)).Bundle("rabbitmq")
	s.Require().NoError(err)
	s.Equal("svc", bundle["user"])
}

func (s *SecretServiceSuite) TestBundlePropagatesTypedErrors() {
	l := &fakeLogical{readErr: errors.New("connection refused")}

	_, err := Service(context.Background(), client(l, nil)).Bundle("rabbitmq")

	var transport vault.TransportError
	s.Require().ErrorAs(err, &transport)
}

func (s *SecretServiceSuite) TestField() {
	l := &fakeLogical{readResponse: &vaultapi.Secret{Data: map[string]any{
		"data": map[string]any{"user": "svc"},
	}}}

	value, err := Service(context.Background(), client(l, nil)).Field("rabbitmq", "user")
	s.Require().NoError(err)
	s.Equal("svc", value)
}

func (s *SecretServiceSuite) TestNames() {
	l := &fakeLogical{listResponse: &vaultapi.Secret{Data: map[string]any{
		"keys": []any{"postgres"},
	}}}

	names, err := Service(context.Background(), client(l, nil)).Names()
	s.Require().NoError(err)
	s.Equal([]string{"postgres"}, names)
}

func (s *SecretServiceSuite) TestHealthNeverFails() {
	sy := &fakeSys{err: errors.New("boom")}

	status := Service(context.Background(), client(nil, sy)).Health()
	s.Equal(vault.StatusUnhealthy, status.Status)
	s.NotEmpty(status.Error)
}

func (s *SecretServiceSuite) TestMask() {
	bundle := vault.Bundle{
		"user":       "svc",
		"password":   "p@ss",
		"api_token":  "t0k3n",
		"secret_key": "sssh",
		"host":       "rabbitmq",
	}

	safe := Mask(bundle)
	s.Equal("svc", safe["user"])
	s.Equal(Masked, safe["password"])
	s.Equal(Masked, safe["api_token"])
	s.Equal(Masked, safe["secret_key"])
	s.Equal("rabbitmq", safe["host"])

	// original untouched
	s.Equal("p@ss", bundle["password"])
}

func (s *SecretServiceSuite) TestMaskField() {
	s.Equal(Masked, MaskField("password", "p@ss"))
	s.Equal("rabbitmq", MaskField("host", "rabbitmq"))
}
