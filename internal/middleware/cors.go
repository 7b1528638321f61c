package middleware

import (
	"net/http"
)

// CORSMiddleware lets the browser frontend call the API from its own
// origin. With "*" configured any origin is allowed; otherwise only the
// configured origins are echoed back.
type CORSMiddleware struct {
	allowed  map[string]bool
	allowAll bool
}

func NewCORSMiddleware(origins []string) *CORSMiddleware {
	m := &CORSMiddleware{allowed: make(map[string]bool, len(origins))}
	for _, o := range origins {
		if o == "*" {
			m.allowAll = true
			continue
		}
		m.allowed[o] = true
	}
	return m
}

func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case m.allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case m.allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
