package router

import (
	"context"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/config"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/pkg/authenticator"
	"github.com/biskitsx/ZideQuest-Backend/pkg/logger"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. A non-nil returned context replaces
// the request context; a non-nil error aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, with the final error and
// response available through xcontext.
type CloserFunc func(ctx context.Context)

type route struct {
	method   string
	segments []string
	handle   http.HandlerFunc
}

type mux struct {
	routes []*route
}

type Router struct {
	mux *mux
	cfg config.Configs

	logger            logger.Logger
	db                *gorm.DB
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:               &mux{},
		cfg:               cfg,
		logger:            logger,
		db:                db,
		accessTokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth),
	}
}

// Branch returns a router sharing the same route table but with its own copy
// of the middleware chains.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.add(http.MethodGet, pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.add(http.MethodPost, pattern, wrapHandler(r, http.MethodPost, handler))
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.add(http.MethodPut, pattern, wrapHandler(r, http.MethodPut, handler))
}

func PATCH[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.add(http.MethodPatch, pattern, wrapHandler(r, http.MethodPatch, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.add(http.MethodDelete, pattern, wrapHandler(r, http.MethodDelete, handler))
}

func (r *Router) add(method, pattern string, handle http.HandlerFunc) {
	r.mux.routes = append(r.mux.routes, &route{
		method:   method,
		segments: splitPath(pattern),
		handle:   handle,
	})
}

// Mount registers a raw http.Handler, used for things like /metrics.
func (r *Router) Mount(method, pattern string, handler http.Handler) {
	r.add(method, pattern, handler.ServeHTTP)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func (m *mux) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	segments := splitPath(req.URL.Path)

	var fallback *route
	for _, rt := range m.routes {
		params, ok := rt.match(req.Method, segments)
		if !ok {
			continue
		}

		if rt.isLiteral() {
			rt.serve(w, req, params)
			return
		}

		if fallback == nil {
			fallback = rt
		}
	}

	if fallback != nil {
		params, _ := fallback.match(req.Method, segments)
		fallback.serve(w, req, params)
		return
	}

	writeError(w, errorNotFoundRoute)
}

func (rt *route) serve(w http.ResponseWriter, req *http.Request, params map[string]string) {
	if len(params) > 0 {
		req = req.WithContext(xcontext.WithPathParams(req.Context(), params))
	}

	rt.handle(w, req)
}

func (rt *route) isLiteral() bool {
	for _, s := range rt.segments {
		if strings.HasPrefix(s, ":") {
			return false
		}
	}

	return true
}

func (rt *route) match(method string, segments []string) (map[string]string, bool) {
	if rt.method != method || len(rt.segments) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, s := range rt.segments {
		if strings.HasPrefix(s, ":") {
			if params == nil {
				params = map[string]string{}
			}
			params[strings.TrimPrefix(s, ":")] = segments[i]
			continue
		}

		if s != segments[i] {
			return nil, false
		}
	}

	return params, true
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
