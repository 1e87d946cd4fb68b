package handlers

import (
	"net"
	"net/http"
	"strings"
)

// unknownAddr is recorded when no client address can be derived.
const unknownAddr = "unknown"

// clientIP derives the originating network address for a request: the first
// comma-separated entry of X-Forwarded-For when present, otherwise the host
// portion of the socket's remote address, otherwise "unknown".
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return unknownAddr
}
