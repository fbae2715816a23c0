// Package network classifies connectivity errors so callers can degrade
// quietly when the machine is offline.
package network

import (
	"errors"
	"net"
	"net/url"
	"syscall"
)

// IsOffline reports whether err indicates the machine has no usable network
// connection, as opposed to a server-side failure.
func IsOffline(err error) bool {
	if err == nil {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return IsOffline(urlErr.Err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound || dnsErr.IsTimeout || dnsErr.IsTemporary
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var errno syscall.Errno
		if errors.As(opErr.Err, &errno) {
			switch errno {
			case syscall.ECONNREFUSED,
				syscall.ENETUNREACH,
				syscall.EHOSTUNREACH,
				syscall.ETIMEDOUT:
				return true
			}
		}
		return opErr.Op == "dial"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
