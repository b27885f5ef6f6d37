// Package middleware holds cross-cutting HTTP middleware that is not
// tied to a single feature: per-client rate limiting and the client-IP
// extraction it depends on.
package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// clientIP returns the IP of the TCP peer. RemoteAddr is the only
// source that cannot be spoofed by the client; forwarded headers are
// trusted nowhere in this service.
func clientIP(r *http.Request) (string, error) {
	return ipFromAddr(r.RemoteAddr)
}

// ipFromAddr strips the port from an "IP:port" address, handling the
// bracketed IPv6 form and bare IPs without a port.
func ipFromAddr(addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("empty remote address")
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		// Bare IP without a port.
		trimmed := strings.Trim(addr, "[]")
		if net.ParseIP(trimmed) == nil {
			return "", fmt.Errorf("invalid remote address %q", addr)
		}
		return trimmed, nil
	}
	return host, nil
}
