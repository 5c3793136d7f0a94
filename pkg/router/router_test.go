package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func named(name string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name))
	}
}

func newTestRouter() *Router {
	r := New()
	r.SetLogger(nil)
	r.GET("/processes", named("list"))
	r.GET("/subProcesses/process/*", named("subs-by-process"))
	r.PUT("/subProcesses/*", named("update-sub"))
	r.GET("/processes/*", named("get"))
	r.GET("/swagger/*", named("swagger"))
	return r
}

func TestDispatch(t *testing.T) {
	r := newTestRouter()
	tests := []struct {
		method, path string
		status       int
		body         string
	}{
		{http.MethodGet, "/processes", http.StatusOK, "list"},
		{http.MethodGet, "/processes/42", http.StatusOK, "get"},
		{http.MethodGet, "/subProcesses/process/42", http.StatusOK, "subs-by-process"},
		{http.MethodPut, "/subProcesses/7", http.StatusOK, "update-sub"},
		{http.MethodGet, "/swagger/index.html", http.StatusOK, "swagger"},
		{http.MethodPost, "/processes", http.StatusMethodNotAllowed, ""},
		{http.MethodDelete, "/processes/42", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/unknown", http.StatusNotFound, ""},
		{http.MethodGet, "/swagger/", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s %s: status %d, want %d", tt.method, tt.path, rec.Code, tt.status)
			continue
		}
		if tt.body != "" && rec.Body.String() != tt.body {
			t.Errorf("%s %s: routed to %q, want %q", tt.method, tt.path, rec.Body.String(), tt.body)
		}
	}
}

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path, pattern string
		want          bool
	}{
		{"/a/1/b", "/a/*/b", true},
		{"/a/1/c", "/a/*/b", false},
		{"/a//b", "/a/*/b", false},
		{"/a/1/2/3", "/a/*", true},
		{"/a", "/a/*", false},
	}
	for _, tt := range tests {
		if got := matchWildcardRoute(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchWildcardRoute(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestPathParam(t *testing.T) {
	if id, ok := PathParam("/processes/42", "/processes/", ""); !ok || id != "42" {
		t.Errorf("got %q %v", id, ok)
	}
	if id, ok := PathParam("/a/42/b", "/a/", "/b"); !ok || id != "42" {
		t.Errorf("got %q %v", id, ok)
	}
	for _, p := range []string{"/processes/", "/processes/a/b", "/other/1"} {
		if _, ok := PathParam(p, "/processes/", ""); ok {
			t.Errorf("PathParam(%q) should fail", p)
		}
	}
}
