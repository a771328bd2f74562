package api

import (
	"errors"
	"net/http"

	"fitcoach-booking/internal/handler/httperr"
	"fitcoach-booking/internal/handler/middleware"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("no authenticated actor in context")

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
