package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// newRouter serves the files under cfg.Dir at the URL root. The CORS
// middleware wraps the router itself rather than being registered with Use:
// mux answers non-canonical paths with a redirect before route matching, and
// those responses need the headers too.
func newRouter(cfg Config) http.Handler {
	r := mux.NewRouter()
	r.PathPrefix("/").Handler(serveFiles(cfg.Dir))
	return corsMiddleware(r)
}

// serveFiles wraps the stdlib file server. Paths ending in /index.html are
// rewritten to their directory first, so the index content is served with 200
// instead of the stdlib redirect to "./".
func serveFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/index.html") {
			r2 := new(http.Request)
			*r2 = *r
			r2.URL = new(url.URL)
			*r2.URL = *r.URL
			r2.URL.Path = strings.TrimSuffix(r.URL.Path, "index.html")
			r = r2
		}
		fs.ServeHTTP(w, r)
	})
}
