package httpapi

import "net/http"

// corsMiddleware allows any origin to call the API, grounded on
// internal/server/server.go's corsMiddleware: scatterbrain's CLI, watch
// TUI, and MCP frontends all talk to this server from arbitrary processes,
// not a browser same-origin context, so there is no origin to restrict to.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
