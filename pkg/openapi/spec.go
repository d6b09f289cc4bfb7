package openapi

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"slices"
)

const Version = "3.1.0"

// Spec is the root of a generated API document.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Tags       []*Tag               `json:"tags,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Tag names an operation group shown in documentation viewers.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewSpec starts a document with the shared error responses already in
// its components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    Version,
		Info:       &Info{Title: title, Version: version},
		Paths:      map[string]*PathItem{},
		Components: NewComponents(),
	}
}

// FromConfig builds a document titled and described by cfg.
func FromConfig(cfg Config, version string) *Spec {
	s := NewSpec(cfg.Title, version)
	s.SetDescription(cfg.Description)
	return s
}

func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddTag registers name once. Later calls keep the first description
// unless it was empty.
func (s *Spec) AddTag(name, description string) {
	i := slices.IndexFunc(s.Tags, func(t *Tag) bool { return t.Name == name })
	if i < 0 {
		s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
		return
	}
	if s.Tags[i].Description == "" {
		s.Tags[i].Description = description
	}
}

// ServeSpec serves a pre-rendered document. Clients sending a matching
// If-None-Match header receive 304.
func ServeSpec(doc []byte) http.HandlerFunc {
	sum := sha256.Sum256(doc)
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}
