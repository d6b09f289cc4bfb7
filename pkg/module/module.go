// Package module mounts self-contained HTTP handlers beneath single-level path
// prefixes such as /api.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/middleware"
)

// Module strips its prefix from incoming requests and hands them to an inner
// handler wrapped in the module's own middleware stack.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module for prefix. It panics when the prefix is empty, lacks a
// leading slash, or spans more than one path segment.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the inner router wrapped with the module middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Serve rewrites the request path relative to the module prefix and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := strings.TrimPrefix(req.URL.Path, m.prefix)
	if inner == "" {
		inner = "/"
	}
	m.Handler().ServeHTTP(w, withPath(req, inner))
}

func withPath(req *http.Request, path string) *http.Request {
	out := req.Clone(req.Context())
	u := *req.URL
	u.Path = path
	u.RawPath = ""
	out.URL = &u
	return out
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
