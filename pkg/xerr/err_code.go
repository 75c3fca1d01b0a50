package xerr

import "net/http"

const (
	ErrInternalServer = 500 // HTTP 500

	ErrBadRequest   = 1000 // HTTP 400
	ErrInvalidInput = 1001 // HTTP 400
	ErrInvalidJSON  = 1003 // HTTP 400

	ErrNotFound = 1300 // HTTP 404

	ErrGenerationFailed = 1500 // HTTP 500
	ErrDB               = 1501 // HTTP 500
)

// HTTPStatus maps an application error code onto the status the handler
// should write.
func HTTPStatus(code int) int {
	switch code {
	case ErrBadRequest, ErrInvalidInput, ErrInvalidJSON:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
