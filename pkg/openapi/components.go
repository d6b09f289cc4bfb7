package openapi

import "maps"

func errorBody(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// NewComponents creates Components holding the shared error schema and the
// error responses every module reuses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 10},
					"search":    {Type: "string", Description: "Case-insensitive substring filter"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorBody("Invalid request"),
			"NotFound":        errorBody("Resource not found"),
			"Conflict":        errorBody("Journal entry already exists"),
			"PayloadTooLarge": errorBody("Upload exceeds the size limit"),
		},
	}
}

func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
