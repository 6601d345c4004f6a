package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/repositories"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/pkg/auth"
)

func testSchema(t *testing.T) graphql.Schema {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
	})
	schema, err := Schema(services.NewServices(repositories.NewRepositories(nil), jwtService))
	require.NoError(t, err)
	return schema
}

func TestSchemaBuilds(t *testing.T) {
	testSchema(t)
}

func TestGuardedQueryRequiresAdmin(t *testing.T) {
	schema := testSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ candidatesWithNoSelections { candidateID } }`,
		Context:       context.Background(),
	})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "admin authentication required")
}

func TestListingQueriesRequireAdmin(t *testing.T) {
	schema := testSchema(t)

	queries := []string{
		`{ allCandidates { candidateID } }`,
		`{ allLecturers { lecturerID } }`,
		`{ allCourses { courseID } }`,
		`{ course(courseID: 1) { courseID } }`,
		`{ lecturerCourses { courseID } }`,
	}
	for _, query := range queries {
		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: query,
			Context:       context.Background(),
		})
		require.NotEmpty(t, result.Errors, query)
		assert.Contains(t, result.Errors[0].Message, "admin authentication required", query)
	}
}

func TestGuardedMutationRequiresAdmin(t *testing.T) {
	schema := testSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `mutation { addCourse(code: "COSC9999", name: "Test", semester: "2025S1") { courseID } }`,
		Context:       context.Background(),
	})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "admin authentication required")
}
