// Package middleware provides various middleware functionality.
package middleware

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// TrustedNetHandler restricts access to clients from one subnet.
type TrustedNetHandler struct {
	Enabled bool
	IPNet   *net.IPNet
	log     *zap.SugaredLogger
}

// NewTrustedNetHandler initializes a new trusted network handler; an empty subnet disables the check.
func NewTrustedNetHandler(subnet string, log *zap.SugaredLogger) (*TrustedNetHandler, error) {
	if subnet == "" {
		return &TrustedNetHandler{log: log}, nil
	}
	_, ipnet, err := net.ParseCIDR(subnet)
	if err != nil {
		return nil, err
	}
	return &TrustedNetHandler{
		Enabled: true,
		IPNet:   ipnet,
		log:     log,
	}, nil
}

// Handle provides trusted network handling functionality.
func (tn *TrustedNetHandler) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tn.Enabled {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)
		if ip == nil || !tn.IPNet.Contains(ip) {
			tn.log.Warnw("Trusted subnet violation", "remote", r.RemoteAddr, "path", r.URL.Path)
			http.Error(w, "Internal subnet access violation", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers X-Real-IP, then the first X-Forwarded-For entry, then the connection address.
func clientIP(r *http.Request) net.IP {
	if ip := net.ParseIP(r.Header.Get("X-Real-IP")); ip != nil {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := net.ParseIP(strings.TrimSpace(strings.Split(fwd, ",")[0])); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return nil
	}
	return net.ParseIP(host)
}
