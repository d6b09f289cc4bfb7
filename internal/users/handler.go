package users

import (
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

// Handler provides HTTP endpoints for users.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "users"),
	}
}

// Routes returns the route group definition for user endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/users",
		Tags:   []string{"Users"},
		Schemas: map[string]*openapi.Schema{
			"User": userSchema,
		},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary: "List users",
					Responses: map[int]*openapi.Response{
						200: {
							Description: "All users",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: openapi.ArrayOf("User")},
							},
						},
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/{id}",
				Handler: h.Find,
				OpenAPI: &openapi.Operation{
					Summary:    "Find user",
					Parameters: []*openapi.Parameter{openapi.PathParam("id", "User id")},
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("User", "User"),
						404: openapi.ResponseRef("NotFound"),
					},
				},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	u, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, u)
}

var userSchema = &openapi.Schema{
	Type:     "object",
	Required: []string{"id", "name", "email", "role", "status", "created_at"},
	Properties: map[string]*openapi.Schema{
		"id":         {Type: "string"},
		"name":       {Type: "string"},
		"email":      {Type: "string", Format: "email"},
		"role":       openapi.Enum("Account role", "admin", "legal_analyst", "reviewer", "viewer"),
		"status":     openapi.Enum("Account status", "active", "inactive", "suspended"),
		"created_at": {Type: "string", Format: "date-time"},
		"last_login": {Type: "string", Format: "date-time"},
	},
}
