package api

import "github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"

var caseDetailSchema = &openapi.Schema{
	Type:        "object",
	Description: "A case composed with its comparison, assessments, and review journal",
	Properties: map[string]*openapi.Schema{
		"case":             openapi.SchemaRef("Case"),
		"subject":          openapi.SchemaRef("Subject"),
		"left":             {Type: "object", Description: "First compared document"},
		"right":            {Type: "object", Description: "Second compared document"},
		"key_differences":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
		"ai_analysis":      {Type: "object"},
		"confidence_level": openapi.Enum("Confidence grade", "high", "medium", "low"),
		"impact":           {Type: "object"},
		"recommendation":   {Type: "object"},
		"narrative":        {Type: "string"},
		"comments":         openapi.ArrayOf("Comment"),
		"decisions":        openapi.ArrayOf("Decision"),
		"audit":            openapi.ArrayOf("AuditEntry"),
	},
}

var translationsSchema = &openapi.Schema{
	Type: "object",
	Properties: map[string]*openapi.Schema{
		"lang":    openapi.Enum("Language", "en", "ar"),
		"dir":     openapi.Enum("Text direction", "ltr", "rtl"),
		"entries": {Type: "object", Description: "Localized text by key"},
	},
}

var detailOp = &openapi.Operation{
	Summary:    "Case detail",
	Parameters: []*openapi.Parameter{openapi.PathParam("id", "Case id")},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Composed case detail", "CaseDetail"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var translationsOp = &openapi.Operation{
	Summary:     "Translation table",
	Description: "Every catalog key resolved for one language. Keys without text resolve to themselves.",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("lang", "string", "Language (en or ar); defaults to the configured language", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Translation table", "Translations"),
		400: openapi.ResponseRef("BadRequest"),
	},
}
