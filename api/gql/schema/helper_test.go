package schema

import (
	"context"

	"github.com/colima-services/reference-api/internal/vault"
	"github.com/graphql-go/graphql"
)

func graphqlSchema(secrets *vault.Client) (graphql.Schema, error) {
	return graphql.NewSchema(New(secrets))
}

func execute(schema graphql.Schema, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}
