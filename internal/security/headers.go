package security

import (
	"net/http"
	"strconv"
)

// Headers attaches hardening headers suited to a JSON storefront API.
type Headers struct {
	Enable                bool
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
}

// Middleware sets the configured security headers on every response.
func (h Headers) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Enable {
			next.ServeHTTP(w, r)
			return
		}
		hdr := w.Header()
		hdr.Set("X-Content-Type-Options", "nosniff")
		hdr.Set("X-Frame-Options", "DENY")
		hdr.Set("Referrer-Policy", "no-referrer")
		hdr.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		hdr.Set("Permissions-Policy", "geolocation=(), camera=(), microphone=()")
		if h.EnableHSTS && r.TLS != nil {
			maxAge := h.HSTSMaxAge
			if maxAge <= 0 {
				maxAge = 31536000
			}
			v := "max-age=" + strconv.Itoa(maxAge)
			if h.HSTSIncludeSubdomains {
				v += "; includeSubDomains"
			}
			hdr.Set("Strict-Transport-Security", v)
		}
		next.ServeHTTP(w, r)
	})
}
