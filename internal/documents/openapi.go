package documents

import "github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"

var schemas = map[string]*openapi.Schema{
	"Document": {
		Type:     "object",
		Required: []string{"id", "law_number", "year", "jurisdiction", "title_ar", "title_en", "version", "status"},
		Properties: map[string]*openapi.Schema{
			"id":             {Type: "string"},
			"law_number":     {Type: "string"},
			"year":           {Type: "integer"},
			"jurisdiction":   {Type: "string"},
			"title_ar":       {Type: "string"},
			"title_en":       {Type: "string"},
			"version":        {Type: "integer"},
			"uploaded_by":    {Type: "string"},
			"upload_date":    {Type: "string", Format: "date-time"},
			"subject_id":     {Type: "string"},
			"file_path":      {Type: "string"},
			"processed_text": {Type: "string"},
			"status":         openapi.Enum("Processing status", "draft", "processing", "active", "archived"),
			"article_count":  {Type: "integer"},
		},
	},
	"DocumentPage": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        openapi.ArrayOf("Document"),
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	},
}

var listOp = &openapi.Operation{
	Summary: "List documents",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("page", "integer", "Page number", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
		openapi.QueryParam("search", "string", "Law number, title, or year substring", false),
		openapi.QueryParam("subject_id", "string", "Subject category id", false),
		openapi.QueryParam("status", "string", "Document status", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Paginated documents", "DocumentPage"),
	},
}

var findOp = &openapi.Operation{
	Summary:    "Find document",
	Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document id")},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Document", "Document"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var uploadOp = &openapi.Operation{
	Summary:     "Submit a document",
	Description: "Validates law metadata and a PDF file. The file is not stored; the response describes the draft that would be registered.",
	RequestBody: &openapi.RequestBody{
		Required: true,
		Content: map[string]*openapi.MediaType{
			"multipart/form-data": {
				Schema: &openapi.Schema{
					Type:     "object",
					Required: []string{"law_number", "year", "title_ar", "title_en", "jurisdiction", "subject_id", "file"},
					Properties: map[string]*openapi.Schema{
						"law_number":   {Type: "string"},
						"year":         {Type: "integer"},
						"title_ar":     {Type: "string"},
						"title_en":     {Type: "string"},
						"jurisdiction": {Type: "string"},
						"subject_id":   {Type: "string"},
						"file":         {Type: "string", Format: "binary"},
					},
				},
			},
		},
	},
	Responses: map[int]*openapi.Response{
		202: openapi.ResponseJSON("Accepted draft document", "Document"),
		400: openapi.ResponseRef("BadRequest"),
		413: {Description: "File exceeds maximum upload size"},
	},
}
