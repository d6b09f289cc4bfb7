package ui

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/formatting"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

// View titles are catalog keys.
var (
	authView        = web.ViewDef{Template: "auth.html", Layout: "bare", Title: "signIn"}
	notFoundView    = web.ViewDef{Template: "not_found.html", Layout: "bare", Title: "notFoundTitle"}
	dashboardView   = web.ViewDef{Template: "dashboard.html", Layout: "app", Title: "dashboard"}
	documentsView   = web.ViewDef{Template: "documents.html", Layout: "app", Title: "documents"}
	uploadView      = web.ViewDef{Template: "upload.html", Layout: "app", Title: "uploadDocument"}
	casesView       = web.ViewDef{Template: "cases.html", Layout: "app", Title: "cases"}
	caseView        = web.ViewDef{Template: "case.html", Layout: "app", Title: "caseDetail"}
	caseMissingView = web.ViewDef{Template: "case_missing.html", Layout: "app", Title: "caseNotFound"}
	subjectsView    = web.ViewDef{Template: "subjects.html", Layout: "app", Title: "subjectTaxonomy"}
	settingsView    = web.ViewDef{Template: "settings.html", Layout: "app", Title: "settings"}
	helpView        = web.ViewDef{Template: "help.html", Layout: "app", Title: "helpTitle"}
)

var views = []web.ViewDef{
	authView,
	notFoundView,
	dashboardView,
	documentsView,
	uploadView,
	casesView,
	caseView,
	caseMissingView,
	subjectsView,
	settingsView,
	helpView,
}

func (u *UI) funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang, key string) string {
			return u.catalog.T(key, i18n.Lang(lang))
		},
		"date": func(lang string, t time.Time) string {
			return i18n.FormatDate(t, i18n.Lang(lang))
		},
		"number": func(lang string, n int) string {
			return i18n.FormatNumber(n, i18n.Lang(lang))
		},
		"decimal": func(lang string, f float64) string {
			return i18n.FormatDecimal(f, i18n.Lang(lang))
		},
		"active": func(path, prefix string) bool {
			return path == prefix || strings.HasPrefix(path, prefix+"/")
		},
		"bytes": func(n int64) string {
			return formatting.FormatBytes(n, 0)
		},
		"docs":            documentList,
		"pageURL":         pageURL,
		"confidenceLabel": cases.ConfidenceLabel,
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// documentList shows at most two document ids followed by a count of the rest.
func documentList(ids []string) string {
	if len(ids) <= 2 {
		return strings.Join(ids, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(ids[:2], ", "), len(ids)-2)
}

// pageURL links to page of the case list under state.
func pageURL(state cases.ListState, page int) string {
	if q := state.WithPage(page).Encode(); q != "" {
		return "/cases?" + q
	}
	return "/cases"
}
