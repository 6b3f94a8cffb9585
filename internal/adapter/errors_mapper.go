package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for any 2xx status and a wrapped sentinel
// otherwise. The server's {"error": "..."} message is used as detail when
// present.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := errorDetail(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), detail)
}

func errorDetail(resp *resty.Response) string {
	if e, ok := resp.Error().(*models.ErrorResponse); ok && e != nil && e.Error != "" {
		return e.Error
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}

	return body
}
