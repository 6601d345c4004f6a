package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter. On failure it writes the
// 400 response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid "+name))
		return 0, false
	}
	return id, true
}
