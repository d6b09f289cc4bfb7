// Package ui serves the bilingual review dashboard as server-rendered pages.
package ui

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/middleware"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

//go:embed templates
var templateFS embed.FS

//go:embed static/app.css
var stylesheet []byte

// UI renders the dashboard pages over the domain systems.
type UI struct {
	dom           *domain.Domain
	catalog       *i18n.Catalog
	templates     *web.TemplateSet
	logger        *slog.Logger
	lang          i18n.Lang
	redirectDelay time.Duration
	maxUploadSize int64
}

// New parses the page templates and returns the dashboard handler. Requests
// that match no page render the not-found page.
func New(cfg *config.Config, infra *infrastructure.Infrastructure, dom *domain.Domain) (http.Handler, error) {
	lang, ok := i18n.ParseLang(cfg.Web.DefaultLanguage)
	if !ok {
		lang = i18n.English
	}

	u := &UI{
		dom:           dom,
		catalog:       infra.Catalog,
		logger:        infra.Logger.With("module", "ui"),
		lang:          lang,
		redirectDelay: cfg.Web.DecisionRedirectDelayDuration(),
		maxUploadSize: cfg.API.MaxUploadSizeBytes(),
	}

	ts, err := web.NewTemplateSet(templateFS, "templates/layouts/*.html", "templates/views", "", u.funcs(), views)
	if err != nil {
		return nil, err
	}
	u.templates = ts

	router := web.NewRouter()
	u.register(router)
	router.SetFallback(http.HandlerFunc(u.notFound))

	stack := middleware.New()
	stack.Use(middleware.RequestID)
	stack.Use(middleware.Recover(u.logger))
	stack.Use(middleware.Logger(u.logger))
	stack.Use(i18n.Middleware(lang))

	return stack.Apply(router), nil
}

func (u *UI) register(r *web.Router) {
	r.HandleFunc("GET /{$}", u.root)
	r.HandleFunc("GET /auth", u.authPage)
	r.HandleFunc("POST /auth", u.signIn)
	r.HandleFunc("POST /logout", u.logout)
	r.HandleFunc("POST /language", u.toggleLanguage)

	r.HandleFunc("GET /dashboard", u.dashboard)
	r.HandleFunc("GET /documents", u.documents)
	r.HandleFunc("GET /upload", u.uploadPage)
	r.HandleFunc("POST /upload", u.upload)
	r.HandleFunc("GET /subjects", u.subjects)
	r.HandleFunc("GET /settings", u.settings)
	r.HandleFunc("GET /help", u.help)

	r.HandleFunc("GET /cases", u.cases)
	r.HandleFunc("POST /cases/select", u.selectCases)
	r.HandleFunc("POST /cases/assign", u.assignCases)
	r.HandleFunc("GET /cases/{caseId}", u.caseDetail)
	r.HandleFunc("POST /cases/{caseId}/comments", u.addComment)
	r.HandleFunc("POST /cases/{caseId}/decision", u.submitDecision)

	r.Handle("GET /static/app.css", web.ServeEmbeddedFile(stylesheet, "text/css; charset=utf-8", 3600))
}

// render executes view with the flash carried over from the previous request.
func (u *UI) render(w http.ResponseWriter, r *http.Request, status int, view web.ViewDef, data any) {
	u.renderFlash(w, r, status, view, web.PopFlash(w, r), data)
}

func (u *UI) renderFlash(w http.ResponseWriter, r *http.Request, status int, view web.ViewDef, flash *web.Flash, data any) {
	lang := i18n.FromContext(r.Context())

	err := u.templates.Render(w, status, view, web.ViewData{
		Title: u.catalog.T(view.Title, lang),
		Path:  r.URL.Path,
		URI:   r.URL.RequestURI(),
		Lang:  lang.String(),
		Dir:   lang.Dir(),
		Flash: flash,
		Data:  data,
	})
	if err != nil {
		u.logger.Error("render failed", "view", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// flash queues a translated notification for the next page.
func (u *UI) flash(w http.ResponseWriter, r *http.Request, kind, key string) {
	web.SetFlash(w, web.Flash{Kind: kind, Message: u.t(r, key)})
}

func (u *UI) t(r *http.Request, key string) string {
	return u.catalog.T(key, i18n.FromContext(r.Context()))
}

func (u *UI) serverError(w http.ResponseWriter, err error) {
	u.logger.Error("request failed", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (u *UI) notFound(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusNotFound, notFoundView, nil)
}
