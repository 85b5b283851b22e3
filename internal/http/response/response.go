package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondFromError maps sentinel errors onto the HTTP taxonomy. Anything
// unrecognized is an internal fault: logged by the caller, generic to the
// client so nothing internal leaks.
func RespondFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, xerrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, xerrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, xerrors.ErrUpstream):
		RespondError(c, http.StatusBadGateway, "upstream_failed", errors.New("upstream provider call failed"))
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
