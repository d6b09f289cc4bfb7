package cases

import "github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"

var schemas = map[string]*openapi.Schema{
	"Case": {
		Type:     "object",
		Required: []string{"id", "document_ids", "case_type", "flagged_by", "flagged_date", "status"},
		Properties: map[string]*openapi.Schema{
			"id":                  {Type: "string"},
			"document_ids":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"case_type":           openapi.Enum("Kind of conflict", "contradiction", "overlap", "gap"),
			"flagged_by":          {Type: "string"},
			"flagged_date":        {Type: "string", Format: "date-time"},
			"status":              openapi.Enum("Review status", "new", "under_review", "validated", "rejected"),
			"assigned_to":         {Type: "string"},
			"validated_by":        {Type: "string"},
			"validation_date":     {Type: "string", Format: "date-time"},
			"recommendation_text": {Type: "string"},
			"severity":            openapi.Enum("Risk label", "high", "medium", "low"),
		},
	},
	"CasePage": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        openapi.ArrayOf("Case"),
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	},
	"AssignRequest": {
		Type:     "object",
		Required: []string{"case_ids"},
		Properties: map[string]*openapi.Schema{
			"case_ids": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	},
}

var listOp = &openapi.Operation{
	Summary:     "List cases",
	Description: "Filters preserve catalog order. Search matches the case id or any document id.",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("page", "integer", "Page number", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
		openapi.QueryParam("search", "string", "Case or document id substring", false),
		openapi.QueryParam("case_type", "string", "contradiction, overlap, or gap", false),
		openapi.QueryParam("status", "string", "new, under_review, validated, or rejected", false),
		openapi.QueryParam("assigned_to", "string", "Assignee user id", false),
		openapi.QueryParam("subject", "string", "Subject id of any case document", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Paginated cases", "CasePage"),
	},
}

var assignOp = &openapi.Operation{
	Summary:     "Request bulk assignment",
	Description: "Records the request in the service log. Case assignees are not changed.",
	RequestBody: openapi.RequestBodyJSON("AssignRequest", true),
	Responses: map[int]*openapi.Response{
		202: {Description: "Request accepted"},
		400: openapi.ResponseRef("BadRequest"),
	},
}
