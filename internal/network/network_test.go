package network

import (
	"errors"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOffline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "dns not found",
			err:      &net.DNSError{Err: "no such host", IsNotFound: true},
			expected: true,
		},
		{
			name:     "connection refused",
			err:      &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			expected: true,
		},
		{
			name:     "network unreachable",
			err:      &net.OpError{Op: "dial", Err: syscall.ENETUNREACH},
			expected: true,
		},
		{
			name:     "timeout",
			err:      &net.OpError{Op: "read", Err: syscall.ETIMEDOUT},
			expected: true,
		},
		{
			name:     "wrapped in url error",
			err:      &url.Error{Op: "Get", URL: "https://api.github.com", Err: &net.OpError{Op: "dial", Err: syscall.EHOSTUNREACH}},
			expected: true,
		},
		{
			name:     "generic error",
			err:      errors.New("500 internal server error"),
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsOffline(tt.err))
		})
	}
}
