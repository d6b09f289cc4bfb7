package routes

import (
	"net/http"
	"strings"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
)

// Group organizes routes under a common prefix. Tags are applied to every
// documented operation in the group, and Schemas are merged into the
// document components.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
	Schemas  map[string]*openapi.Schema
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, prefix, child)
	}
}

// Describe adds every documented route in groups to spec under basePath.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, basePath, group)
	}
}

func describeGroup(spec *openapi.Spec, parent string, group Group) {
	prefix := parent + group.Prefix
	if len(group.Schemas) > 0 {
		spec.Components.AddSchemas(group.Schemas)
	}

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		for _, tag := range op.Tags {
			spec.AddTag(tag, "")
		}

		path := strings.TrimSuffix(prefix+route.Pattern, "/")
		if path == "" {
			path = "/"
		}

		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}

		item.Set(route.Method, &op)
	}

	for _, child := range group.Children {
		describeGroup(spec, prefix, child)
	}
}
