package server

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bytesOf(n int) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte("a"), n))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{"Direct Connection", "203.0.113.5:5555", "", nil, "203.0.113.5"},
		{"Untrusted Forwarded Header Ignored", "203.0.113.5:5555", "1.1.1.1", nil, "203.0.113.5"},
		{"Trusted Proxy Uses Rightmost Hop", "10.0.0.2:5555", "1.1.1.1, 198.51.100.7", []string{"10.0.0.2"}, "198.51.100.7"},
		{"Trusted Proxy Without Header", "10.0.0.2:5555", "", []string{"10.0.0.2"}, "10.0.0.2"},
		{"Unparseable Remote Addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}
