package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/auth"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes admin console queries. Requests carrying a valid
// admin token get their context marked so guarded resolvers pass;
// adminLogin itself needs no token.
func Handler(schema graphql.Schema, jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewMessage("Invalid GraphQL request"))
			return
		}

		ctx := c.Request.Context()
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if tokenString, err := auth.ExtractBearerToken(authHeader); err == nil {
				if claims, err := jwtService.ValidateToken(tokenString); err == nil &&
					claims.AccountType == auth.AccountAdmin {
					ctx = WithAdmin(ctx)
				}
			}
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        ctx,
		})
		c.JSON(http.StatusOK, result)
	}
}
