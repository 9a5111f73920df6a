package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name    string
		xff     string
		realIP  string
		remote  string
		want    string
		private bool
	}{
		{name: "forwarded first hop", xff: "203.0.113.7, 10.0.0.1", remote: "10.0.0.2:1234", want: "203.0.113.7"},
		{name: "invalid forwarded falls through", xff: "garbage", realIP: "198.51.100.4", remote: "10.0.0.2:1234", want: "198.51.100.4"},
		{name: "remote addr", remote: "192.168.1.5:5555", want: "192.168.1.5", private: true},
		{name: "ipv6 remote", remote: "[::1]:80", want: "::1", private: true},
		{name: "unparseable", remote: "pipe", want: "127.0.0.1", private: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			got := ExtractClientIP(r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.private, IsPrivateIP(got))
		})
	}
}
