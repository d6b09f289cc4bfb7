package reviews

import "github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"

var caseParam = openapi.PathParam("id", "Case id")

var schemas = map[string]*openapi.Schema{
	"Comment": {
		Type:     "object",
		Required: []string{"id", "case_id", "author", "role", "text", "timestamp"},
		Properties: map[string]*openapi.Schema{
			"id":        {Type: "string", Description: "Unix millisecond timestamp of creation"},
			"case_id":   {Type: "string"},
			"author":    {Type: "string"},
			"role":      {Type: "string"},
			"text":      {Type: "string"},
			"timestamp": {Type: "string", Format: "date-time"},
		},
	},
	"CommentCommand": {
		Type:     "object",
		Required: []string{"text"},
		Properties: map[string]*openapi.Schema{
			"author": {Type: "string", Default: DefaultAuthor},
			"role":   {Type: "string", Default: DefaultRole},
			"text":   {Type: "string"},
		},
	},
	"Decision": {
		Type:     "object",
		Required: []string{"id", "case_id", "decision", "recommendation", "submitted_by", "submitted_at"},
		Properties: map[string]*openapi.Schema{
			"id":             {Type: "string", Format: "uuid"},
			"case_id":        {Type: "string"},
			"decision":       openapi.Enum("Verdict", "validate", "reject"),
			"recommendation": {Type: "string"},
			"submitted_by":   {Type: "string"},
			"submitted_at":   {Type: "string", Format: "date-time"},
		},
	},
	"DecisionCommand": {
		Type:     "object",
		Required: []string{"decision", "recommendation"},
		Properties: map[string]*openapi.Schema{
			"decision":       openapi.Enum("Verdict", "validate", "reject"),
			"recommendation": {Type: "string"},
			"submitted_by":   {Type: "string", Default: DefaultAuthor},
		},
	},
	"AuditEntry": {
		Type:     "object",
		Required: []string{"id", "case_id", "user_name", "action", "timestamp"},
		Properties: map[string]*openapi.Schema{
			"id":        {Type: "string", Format: "uuid"},
			"case_id":   {Type: "string"},
			"user_name": {Type: "string"},
			"action":    openapi.Enum("Recorded action", "created", "assigned", "viewed", "commented", "validated", "rejected"),
			"timestamp": {Type: "string", Format: "date-time"},
			"details":   {Type: "string"},
		},
	},
}

func listOf(description, schema string) map[int]*openapi.Response {
	return map[int]*openapi.Response{
		200: {
			Description: description,
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: openapi.ArrayOf(schema)},
			},
		},
		404: openapi.ResponseRef("NotFound"),
	}
}

var commentsOp = &openapi.Operation{
	Summary:    "List comments",
	Parameters: []*openapi.Parameter{caseParam},
	Responses:  listOf("Comments in insertion order", "Comment"),
}

var addCommentOp = &openapi.Operation{
	Summary:     "Add comment",
	Parameters:  []*openapi.Parameter{caseParam},
	RequestBody: openapi.RequestBodyJSON("CommentCommand", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Created comment", "Comment"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var decisionsOp = &openapi.Operation{
	Summary:    "List decisions",
	Parameters: []*openapi.Parameter{caseParam},
	Responses:  listOf("Decisions in submission order", "Decision"),
}

var submitDecisionOp = &openapi.Operation{
	Summary:     "Submit decision",
	Description: "Records a validate or reject decision. The case status is not changed.",
	Parameters:  []*openapi.Parameter{caseParam},
	RequestBody: openapi.RequestBodyJSON("DecisionCommand", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Recorded decision", "Decision"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var auditOp = &openapi.Operation{
	Summary:    "Audit log",
	Parameters: []*openapi.Parameter{caseParam},
	Responses:  listOf("Audit entries in insertion order", "AuditEntry"),
}
