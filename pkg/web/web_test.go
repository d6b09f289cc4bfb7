package web_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

var pages = fstest.MapFS{
	"layouts/app.html": {Data: []byte(
		`{{ define "app" }}<html lang="{{ .Lang }}" dir="{{ .Dir }}"><title>{{ .Title }}</title>{{ with .Flash }}<p class="{{ .Kind }}">{{ .Message }}</p>{{ end }}{{ template "content" . }}</html>{{ end }}`,
	)},
	"views/cases.html": {Data: []byte(
		`{{ define "content" }}<h1>{{ shout .Data }}</h1>{{ end }}`,
	)},
	"views/missing.html": {Data: []byte(
		`{{ define "content" }}<h1>not found</h1>{{ end }}`,
	)},
}

var (
	casesView   = web.ViewDef{Template: "cases.html", Layout: "app", Title: "Cases"}
	missingView = web.ViewDef{Template: "missing.html", Layout: "app", Title: "Not Found"}
)

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	funcs := template.FuncMap{"shout": strings.ToUpper}
	ts, err := web.NewTemplateSet(pages, "layouts/*.html", "views", "", funcs, []web.ViewDef{casesView, missingView})
	if err != nil {
		t.Fatalf("template set: %v", err)
	}
	return ts
}

func TestRender(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	err := ts.Render(rec, http.StatusOK, casesView, web.ViewData{
		Lang:  "ar",
		Dir:   "rtl",
		Flash: &web.Flash{Kind: web.FlashSuccess, Message: "done"},
		Data:  "flagged",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{`lang="ar"`, `dir="rtl"`, "<title>Cases</title>", "<h1>FLAGGED</h1>", `class="success"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content-type: %s", ct)
	}
}

func TestRenderStatusAndUnknownView(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusNotFound, missingView, web.ViewData{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}

	err := ts.Render(httptest.NewRecorder(), http.StatusOK, web.ViewDef{Template: "nope.html", Layout: "app"}, web.ViewData{})
	if err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	web.SetFlash(set, web.Flash{Kind: web.FlashSuccess, Message: "Comment added successfully"})

	req := httptest.NewRequest("GET", "/cases/1", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}

	pop := httptest.NewRecorder()
	f := web.PopFlash(pop, req)
	if f == nil || f.Message != "Comment added successfully" {
		t.Fatalf("flash: got %+v", f)
	}

	cleared := pop.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("flash cookie not cleared: %+v", cleared)
	}

	if web.PopFlash(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)) != nil {
		t.Error("expected nil flash without cookie")
	}
}

func TestRouterFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /cases", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("without fallback: got %d, want 404", rec.Code)
	}

	r.SetFallback(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("fallback: got %d, want 418", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/cases", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("registered: got %d, want 200", rec.Code)
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	rec := httptest.NewRecorder()
	web.ServeEmbeddedFile([]byte("body{}"), "text/css; charset=utf-8", 300)(rec, httptest.NewRequest("GET", "/static/app.css", nil))

	if rec.Body.String() != "body{}" {
		t.Errorf("body: %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("cache-control: %q", got)
	}
}
