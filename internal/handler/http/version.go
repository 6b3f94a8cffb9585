package http

import (
	"net/http"
)

// getServerVersion writes the version as plain text. Build date and commit,
// when known, go into X-Build-Date and X-Build-Commit.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	if date := build.BuildDate(); date != "" {
		w.Header().Set("X-Build-Date", date)
	}
	if commit := build.BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(serverVersion))
}
