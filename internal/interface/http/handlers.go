package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "github.com/orkidhq/orkid-cms/internal/application"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/response"
)

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// fail maps application errors onto the response taxonomy: 400 for rejected
// writes, 401 for credentials, 404 for missing ids, 500 for upstream or
// unexpected failures. Internal detail never leaks into the 500 body.
func fail(c *gin.Context, err error) {
	var verr *app.ValidationError
	var uerr *app.UpstreamError
	switch {
	case errors.As(err, &verr):
		response.Fail(c, http.StatusBadRequest, "validation failed", map[string]string{verr.Field: verr.Reason})
	case errors.Is(err, repo.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, app.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, app.ErrEmailTaken):
		response.Fail(c, http.StatusBadRequest, "user already exists", nil)
	case errors.As(err, &uerr):
		response.Fail(c, http.StatusInternalServerError, "upstream failure", nil)
	default:
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
