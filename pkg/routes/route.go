// Package routes declares HTTP routes as data so the same declarations drive
// both mux registration and the OpenAPI document.
package routes

import (
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. OpenAPI is optional;
// routes without it are served but left out of the generated document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
