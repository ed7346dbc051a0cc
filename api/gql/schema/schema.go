package schema

import (
	"github.com/colima-services/reference-api/api/rest/service/secret"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/graphql-go/graphql"
)

// New instantiates a fresh GraphQL schema resolving against
// the given secret store client.
func New(secrets *vault.Client) graphql.SchemaConfig {
	return graphql.SchemaConfig{
		Query: graphql.NewObject(
			graphql.ObjectConfig{
				Name:   "Query",
				Fields: fields(secrets),
			},
		),
	}
}

var healthType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StoreHealth",
	Fields: graphql.Fields{
		"status":      &graphql.Field{Type: graphql.String},
		"initialized": &graphql.Field{Type: graphql.Boolean},
		"sealed":      &graphql.Field{Type: graphql.Boolean},
		"version":     &graphql.Field{Type: graphql.String},
		"error":       &graphql.Field{Type: graphql.String},
	},
})

func fields(secrets *vault.Client) graphql.Fields {
	return graphql.Fields{
		"secretNames": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return secret.Service(p.Context, secrets).Names()
			},
		},
		"storeHealth": &graphql.Field{
			Type: healthType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return secret.Service(p.Context, secrets).Health(), nil
			},
		},
	}
}
