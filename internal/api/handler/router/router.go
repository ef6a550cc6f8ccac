package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/channel-insights/pkg/apiErrors"
)

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

type Option func(r *httprouter.Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) Option {
	return func(r *httprouter.Router) {
		for _, route := range routes {
			r.Handler(route.Method, route.Path, route.Handler)
		}
	}
}

// New cria o roteador. Rotas e métodos desconhecidos respondem no formato de apiErrors.
func New(options ...Option) http.Handler {
	r := httprouter.New()
	r.HandleMethodNotAllowed = true
	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "route not found: "+req.URL.Path, nil)
	})
	r.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, req.Method+" not allowed on "+req.URL.Path, nil)
	})

	for _, option := range options {
		option(r)
	}

	return r
}
