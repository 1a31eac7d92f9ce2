package api

import (
	"net/http"
	"strconv"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/handler/httperr"
	"loyalty-engine/internal/handler/middleware"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("unauthenticated")

// mustActor aborts with 401 when the auth middleware did not run.
func mustActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Handle(c, errs.Invalid(name, "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// queryLimit returns 0 (the usecase default) when the parameter is absent or malformed.
func queryLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func queryCursor(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request", nil)
		return false
	}
	return true
}
