package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded header single entry",
			forwarded:  "203.0.113.7",
			remoteAddr: "10.0.0.1:4321",
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded header takes first entry",
			forwarded:  "203.0.113.7, 70.41.3.18, 150.172.238.178",
			remoteAddr: "10.0.0.1:4321",
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded header entries are trimmed",
			forwarded:  "  203.0.113.7 ,10.0.0.1",
			remoteAddr: "10.0.0.1:4321",
			want:       "203.0.113.7",
		},
		{
			name:       "falls back to socket address",
			remoteAddr: "198.51.100.4:5678",
			want:       "198.51.100.4",
		},
		{
			name:       "socket address without port",
			remoteAddr: "198.51.100.4",
			want:       "198.51.100.4",
		},
		{
			name: "unknown when nothing available",
			want: "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/users", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIP(req); got != tc.want {
				t.Fatalf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
