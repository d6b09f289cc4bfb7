// Package web renders server-side pages from embedded Go templates.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a page template and the layout it renders inside.
type ViewDef struct {
	Template string
	Layout   string
	Title    string
}

// ViewData is the value every layout and view template executes against.
// Path is the request path and URI the path with its query. Lang and Dir
// set the document language and text direction.
type ViewData struct {
	Title    string
	BasePath string
	Path     string
	URI      string
	Lang     string
	Dir      string
	Flash    *Flash
	Data     any
}

// TemplateSet holds one pre-parsed template tree per view. Each tree is a
// clone of the parsed layouts with the view's template added, so views can
// redefine the same blocks without colliding.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses layoutGlob from fsys, then clones the layouts for
// each view and parses the view from viewDir. Parsing fails fast at startup.
func NewTemplateSet(fsys fs.FS, layoutGlob, viewDir, basePath string, funcs template.FuncMap, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS, err := fs.Sub(fsys, viewDir)
	if err != nil {
		return nil, err
	}

	set := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewFS, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		set[v.Template] = t
	}

	return &TemplateSet{views: set, basePath: basePath}, nil
}

// BasePath returns the prefix used for generated URLs.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Render executes view inside its layout and writes the result with status.
// Output is buffered so a template error still produces a clean 500.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, view ViewDef, data ViewData) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	if data.Title == "" {
		data.Title = view.Title
	}
	data.BasePath = ts.basePath

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, view.Layout, data); err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
