package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment.
// Requests that no module claims go to the native mux, and requests the native
// mux has no pattern for go to the fallback handler when one is set.
type Router struct {
	modules  map[string]*Module
	native   *http.ServeMux
	fallback http.Handler
}

func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix, replacing any module already there.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// SetFallback configures the handler for paths that neither a module nor the
// native mux matches.
func (r *Router) SetFallback(handler http.Handler) {
	r.fallback = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := trimTrailingSlash(req)

	if m, ok := r.modules[firstSegment(path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.fallback != nil {
		if _, pattern := r.native.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	rest := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return "/" + rest
}

func trimTrailingSlash(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
