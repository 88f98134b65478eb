package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/pagination"
	resp "github.com/anhthuvo/mobileAppBE/internal/transport/http/response"
)

func writeErr(c *gin.Context, code int, msg string) {
	c.JSON(resp.Status(code), resp.Error(code, msg))
}

func writeOK(c *gin.Context, data any) {
	c.JSON(200, resp.OK(data))
}

// writeDomainErr maps repository failures onto the response taxonomy.
// Unexpected faults are logged with detail and reported generically so
// store internals never leak to the caller.
func writeDomainErr(c *gin.Context, l *zap.Logger, err error, notFoundMsg, genericMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErr(c, resp.CodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrDuplicate):
		writeErr(c, resp.CodeConflict, "duplicate unique field")
	case errors.Is(err, pagination.ErrInvalid):
		writeErr(c, resp.CodeBadRequest, err.Error())
	default:
		l.Error(genericMsg, zap.Error(err), zap.String("rid", c.GetString("X-Request-ID")))
		writeErr(c, resp.CodeServerError, genericMsg)
	}
}
