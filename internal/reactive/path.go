package reactive

import "strings"

// NormalizePath returns the collection path rooted at prefix.
//
// Surrounding spaces and slashes are trimmed. A leading segment equal to
// prefix (case-insensitively) is dropped before prefix is applied again, so
// "accounts" and "API/accounts" both become "api/accounts" for prefix "api".
// An empty path stays empty: the store then has no remote capability.
func NormalizePath(path, prefix string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}

	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return path
	}

	first, rest, _ := strings.Cut(path, "/")
	if strings.EqualFold(first, prefix) {
		path = strings.Trim(rest, "/")
	}

	if path == "" {
		return prefix
	}

	return prefix + "/" + path
}
