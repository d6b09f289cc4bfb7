package subjects

import (
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

// Handler provides HTTP endpoints for the subject taxonomy.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "subjects"),
	}
}

// Routes returns the route group definition for subject endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/subjects",
		Tags:   []string{"Subjects"},
		Schemas: map[string]*openapi.Schema{
			"Subject": subjectSchema,
		},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary: "List subjects",
					Responses: map[int]*openapi.Response{
						200: {
							Description: "All subject categories",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: openapi.ArrayOf("Subject")},
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
					Summary:    "Find subject",
					Parameters: []*openapi.Parameter{openapi.PathParam("id", "Subject id")},
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Subject category", "Subject"),
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
	s, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, s)
}

var subjectSchema = &openapi.Schema{
	Type:     "object",
	Required: []string{"id", "name_ar", "name_en", "color"},
	Properties: map[string]*openapi.Schema{
		"id":          {Type: "string"},
		"name_ar":     {Type: "string"},
		"name_en":     {Type: "string"},
		"description": {Type: "string"},
		"color":       {Type: "string", Description: "Display color as #RRGGBB", Example: "#3B82F6"},
		"parent_id":   {Type: "string"},
	},
}
