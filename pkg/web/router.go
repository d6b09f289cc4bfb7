package web

import "net/http"

// Router wraps http.ServeMux and sends requests with no matching pattern to a
// fallback handler, typically a rendered not-found page.
type Router struct {
	mux      *http.ServeMux
	fallback http.Handler
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetFallback configures the handler for unmatched routes.
func (r *Router) SetFallback(handler http.Handler) {
	r.fallback = handler
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mux exposes the underlying mux for routes.Register.
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
