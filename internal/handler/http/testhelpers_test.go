package http

import (
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

var accountIDKeyForTest = utils.AccountIDCtxKey

func newRequestWithHeader(method, path, key, value string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if value != "" {
		req.Header.Set(key, value)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
