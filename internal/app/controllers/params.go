package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// pathID reads the :id path parameter. It writes a 400 and returns false
// when the value is not a positive integer.
func pathID(ctx *gin.Context) (int64, bool) {
	return parseID(ctx, "id", ctx.Param("id"))
}

// queryID reads an optional numeric query parameter. Absent means 0.
func queryID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	return parseID(ctx, name, raw)
}

func parseID(ctx *gin.Context, name, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// queryIDs reads several optional numeric query parameters at once
func queryIDs(ctx *gin.Context, names ...string) (map[string]int64, bool) {
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		id, ok := queryID(ctx, name)
		if !ok {
			return nil, false
		}
		ids[name] = id
	}
	return ids, true
}
