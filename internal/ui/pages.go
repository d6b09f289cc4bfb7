package ui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/documents"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

func (u *UI) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth", http.StatusFound)
}

func (u *UI) authPage(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, authView, nil)
}

// signIn accepts any credentials.
func (u *UI) signIn(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (u *UI) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth", http.StatusSeeOther)
}

func (u *UI) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	lc := i18n.NewContext(i18n.FromContext(r.Context()))
	lc.Toggle()
	i18n.SetCookie(w, lc.Lang)

	http.Redirect(w, r, returnPath(r.FormValue("return")), http.StatusSeeOther)
}

// returnPath accepts only local absolute paths.
func returnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/dashboard"
	}
	return p
}

type subjectShare struct {
	Subject   subjects.Subject
	Conflicts int
	Share     int
}

type caseRow struct {
	Case     cases.Case
	Subject  *subjects.Subject
	Reviewer string
}

type dashboardData struct {
	Stats       mockdata.DashboardStats
	Recent      []caseRow
	TopSubjects []subjectShare
}

func (u *UI) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := u.dom.Cases.All(ctx)
	if err != nil {
		u.serverError(w, err)
		return
	}

	stats := mockdata.Stats()
	data := dashboardData{Stats: stats}

	for _, c := range all[:min(3, len(all))] {
		data.Recent = append(data.Recent, u.row(r, c))
	}

	for i, sc := range stats.TopSubjects {
		s, err := u.dom.Subjects.Find(ctx, sc.SubjectID)
		if err != nil {
			continue
		}
		data.TopSubjects = append(data.TopSubjects, subjectShare{
			Subject:   *s,
			Conflicts: sc.Conflicts,
			Share:     stats.ConflictShare(i),
		})
	}

	u.render(w, r, http.StatusOK, dashboardView, data)
}

type documentRow struct {
	Document documents.Document
	Subject  *subjects.Subject
	Articles int
}

type documentsData struct {
	Search string
	Rows   []documentRow
}

func (u *UI) documents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters := documents.FiltersFromQuery(r.URL.Query())

	docs, err := u.dom.Documents.Search(ctx, filters)
	if err != nil {
		u.serverError(w, err)
		return
	}

	data := documentsData{Search: filters.Search, Rows: make([]documentRow, 0, len(docs))}
	for _, d := range docs {
		row := documentRow{Document: d}
		if s, err := u.dom.Subjects.Find(ctx, d.SubjectID); err == nil {
			row.Subject = s
		}
		if d.ArticleCount != nil {
			row.Articles = *d.ArticleCount
		}
		data.Rows = append(data.Rows, row)
	}

	u.render(w, r, http.StatusOK, documentsView, data)
}

type uploadData struct {
	Subjects []subjects.Subject
	Form     documents.UploadCommand
	MaxSize  int64
}

func (u *UI) uploadPage(w http.ResponseWriter, r *http.Request) {
	u.renderUpload(w, r, http.StatusOK, web.PopFlash(w, r), documents.UploadCommand{})
}

func (u *UI) upload(w http.ResponseWriter, r *http.Request) {
	cmd, err := documents.ParseUploadForm(w, r, u.maxUploadSize)
	if err == nil {
		_, err = u.dom.Documents.Accept(r.Context(), cmd, u.maxUploadSize)
	}

	if err != nil {
		key, ok := uploadErrorKey(err)
		if !ok {
			u.serverError(w, err)
			return
		}
		flash := &web.Flash{Kind: web.FlashError, Message: u.t(r, key)}
		u.renderUpload(w, r, http.StatusUnprocessableEntity, flash, cmd)
		return
	}

	u.logger.Info("document accepted", "law_number", cmd.LawNumber, "year", cmd.Year)
	u.flash(w, r, web.FlashSuccess, "uploadSuccess")
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}

func (u *UI) renderUpload(w http.ResponseWriter, r *http.Request, status int, flash *web.Flash, form documents.UploadCommand) {
	subs, err := u.dom.Subjects.List(r.Context())
	if err != nil {
		u.serverError(w, err)
		return
	}
	u.renderFlash(w, r, status, uploadView, flash, uploadData{
		Subjects: subs,
		Form:     form,
		MaxSize:  u.maxUploadSize,
	})
}

func uploadErrorKey(err error) (string, bool) {
	switch {
	case errors.Is(err, documents.ErrMissingField):
		return "requiredFields", true
	case errors.Is(err, documents.ErrInvalidYear):
		return "invalidYear", true
	case errors.Is(err, documents.ErrNotPDF):
		return "notPDF", true
	case errors.Is(err, documents.ErrFileTooLarge):
		return "fileTooLarge", true
	}
	return "", false
}

type subjectNode struct {
	Subject  subjects.Subject
	Children []subjects.Subject
}

func (u *UI) subjects(w http.ResponseWriter, r *http.Request) {
	subs, err := u.dom.Subjects.List(r.Context())
	if err != nil {
		u.serverError(w, err)
		return
	}

	var roots []subjectNode
	for _, s := range subs {
		if s.IsChild() {
			continue
		}
		node := subjectNode{Subject: s}
		for _, c := range subs {
			if c.ParentID == s.ID {
				node.Children = append(node.Children, c)
			}
		}
		roots = append(roots, node)
	}

	u.render(w, r, http.StatusOK, subjectsView, roots)
}

func (u *UI) settings(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, settingsView, nil)
}

func (u *UI) help(w http.ResponseWriter, r *http.Request) {
	u.render(w, r, http.StatusOK, helpView, nil)
}

// row resolves the subject and reviewer shown beside a case.
func (u *UI) row(r *http.Request, c cases.Case) caseRow {
	ctx := r.Context()
	row := caseRow{Case: c}

	if len(c.DocumentIDs) > 0 {
		if d, err := u.dom.Documents.Find(ctx, c.DocumentIDs[0]); err == nil {
			if s, err := u.dom.Subjects.Find(ctx, d.SubjectID); err == nil {
				row.Subject = s
			}
		}
	}

	if c.AssignedTo != "" {
		if usr, err := u.dom.Users.Find(ctx, c.AssignedTo); err == nil {
			row.Reviewer = usr.Name
		}
	}

	return row
}
