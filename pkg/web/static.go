package web

import (
	"net/http"
	"strconv"
)

// ServeEmbeddedFile returns a handler that serves data with the given content
// type. Responses may be cached for maxAge seconds when maxAge is positive.
func ServeEmbeddedFile(data []byte, contentType string, maxAge int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Type", contentType)
		h.Set("Content-Length", strconv.Itoa(len(data)))
		if maxAge > 0 {
			h.Set("Cache-Control", "public, max-age="+strconv.Itoa(maxAge))
		}
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
