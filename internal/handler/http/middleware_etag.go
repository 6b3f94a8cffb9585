package http

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// withETag buffers successful GET responses, tags them with a strong ETag
// computed from the body and answers 304 when If-None-Match already holds it.
func withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		buf := newBufferedResponseWriter()
		next.ServeHTTP(buf, r)

		if buf.status != 0 && buf.status != http.StatusOK {
			buf.flushTo(w)
			return
		}

		sum := sha256.Sum256(buf.body)
		etag := `"` + hex.EncodeToString(sum[:]) + `"`
		buf.header.Set("ETag", etag)

		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			for k, v := range buf.header {
				w.Header()[k] = v
			}
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		buf.flushTo(w)
	})
}

func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}

	return false
}
