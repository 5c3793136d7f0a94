package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor   = color.New(color.FgCyan)
	okColor     = color.New(color.FgGreen)
	redirColor  = color.New(color.FgCyan)
	clientColor = color.New(color.FgYellow)
	serverColor = color.New(color.FgRed)
	getColor    = color.New(color.FgGreen)
	postColor   = color.New(color.FgBlue)
	putColor    = color.New(color.FgYellow)
	deleteColor = color.New(color.FgRed)
	otherColor  = color.New(color.FgCyan)
	durColor    = color.New(color.FgBlue)
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string
	pattern string
	handler HandlerFunc
}

// Router matches exact paths first, then wildcard patterns in registration order,
// so more specific wildcard routes must be registered before generic ones.
type Router struct {
	exact     map[string]HandlerFunc // key = METHOD:PATH
	paths     map[string]bool
	wildcards []route
	logf      func(format string, args ...any)
}

func New() *Router {
	return &Router{
		exact: make(map[string]HandlerFunc),
		paths: make(map[string]bool),
		logf:  log.Printf,
	}
}

// SetLogger replaces the access logger; nil silences it.
func (r *Router) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	r.logf = logf
}

// ServeHTTP dispatches the request and writes one access log line.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	r.dispatch(lrw, req)

	r.logf("%s %s %s %s %s",
		timeColor.Sprintf("[%s]", start.Format("2006-01-02 15:04:05")),
		methodColor(req.Method).Sprint(req.Method),
		req.URL.Path,
		statusColor(lrw.statusCode).Sprint(lrw.statusCode),
		durColor.Sprintf("(%v)", time.Since(start)),
	)
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.exact[req.Method+":"+req.URL.Path]; ok {
		h(w, req)
		return
	}

	pathMatched := r.paths[req.URL.Path]
	for _, rt := range r.wildcards {
		if !matchWildcardRoute(req.URL.Path, rt.pattern) {
			continue
		}
		if rt.method == req.Method {
			rt.handler(w, req)
			return
		}
		pathMatched = true
	}

	if pathMatched {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern.
// A trailing "*" matches any number of remaining segments (at least one); any
// other "*" matches exactly one segment.
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	last := len(routeSegments) - 1
	if routeSegments[last] == "*" {
		if len(requestSegments) < len(routeSegments) || requestSegments[last] == "" {
			return false
		}
		requestSegments = requestSegments[:len(routeSegments)]
	} else if len(requestSegments) != len(routeSegments) {
		return false
	}

	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			if requestSegments[i] == "" {
				return false
			}
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// PathParam extracts the segment between prefix and suffix, e.g.
// PathParam("/processes/42/sub", "/processes/", "/sub") returns "42".
func PathParam(path, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) || len(path) < len(prefix)+len(suffix) {
		return "", false
	}
	param := path[len(prefix) : len(path)-len(suffix)]
	if param == "" || strings.Contains(param, "/") {
		return "", false
	}
	return param, true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	if strings.Contains(path, "*") {
		r.wildcards = append(r.wildcards, route{method: method, pattern: path, handler: handler})
		return
	}
	r.exact[method+":"+path] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Routes lists registered routes as METHOD:PATH, exact ones first.
func (r *Router) Routes() []string {
	out := make([]string, 0, len(r.exact)+len(r.wildcards))
	for key := range r.exact {
		out = append(out, key)
	}
	for _, rt := range r.wildcards {
		out = append(out, rt.method+":"+rt.pattern)
	}
	return out
}

// ServerOptions configures the HTTP server.
type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Start serves on addr until ctx is cancelled, then drains in-flight requests.
func (r *Router) Start(ctx context.Context, addr string, opts ServerOptions) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server started on %s", okColor.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("🛑 Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return okColor
	case code >= 300 && code < 400:
		return redirColor
	case code >= 400 && code < 500:
		return clientColor
	default:
		return serverColor
	}
}

func methodColor(method string) *color.Color {
	switch method {
	case http.MethodGet:
		return getColor
	case http.MethodPost:
		return postColor
	case http.MethodPut, http.MethodPatch:
		return putColor
	case http.MethodDelete:
		return deleteColor
	default:
		return otherColor
	}
}
