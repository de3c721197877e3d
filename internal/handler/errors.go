package handler

import (
	"errors"
	"net/http"

	"device-warranty-server/internal/service"
	"device-warranty-server/pkg/response"
)

// writeError maps a service error to its HTTP status and renders the fixed
// {"error": message} body. Validation and conflict both map to 400.
func writeError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		response.InternalError(w, "Unexpected error")
		return
	}

	switch svcErr.Code {
	case service.CodeValidation, service.CodeConflict:
		response.BadRequest(w, svcErr.Message)
	case service.CodeUnauthorized:
		response.Unauthorized(w, svcErr.Message)
	case service.CodeNotFound:
		response.NotFound(w, svcErr.Message)
	default:
		response.InternalError(w, svcErr.Message)
	}
}
