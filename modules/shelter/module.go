package shelter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/pkg/binder"
	"github.com/dmitrymomot/petadopt/pkg/i18n"
	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/svc/adoption"
	"github.com/dmitrymomot/petadopt/svc/animals"
	"github.com/dmitrymomot/petadopt/svc/suggestions"
)

// Suggester picks listings to show next to the one being viewed.
type Suggester interface {
	Suggest(ctx context.Context, currentID int64) suggestions.Suggestions
}

// Module serves the adoption site: pages, live form validation and the
// JSON API the pages and external clients use.
type Module struct {
	svc          *animals.Service
	suggest      Suggester
	tr           *i18n.Translator
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

func New(svc *animals.Service, suggest Suggester, tr *i18n.Translator, opts ...Option) *Module {
	m := &Module{
		svc:     svc,
		suggest: suggest,
		tr:      tr,
		views:   NewViews(tr),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.errorHandler = handler.NewErrorHandler(m.log, handler.ErrorHandlerConfig{
		ErrorPage:   m.views.ErrorPage,
		ErrorToast:  m.views.ErrorToast,
		ToastTarget: "#" + toastID,
		Translate: func(ctx context.Context, key string) string {
			return tr.T(i18n.Locale(ctx), key, nil)
		},
	})
	return m
}

// ErrorHandler is the handler used for every route of the module.
func (m *Module) ErrorHandler() handler.ErrorHandler[handler.Context] {
	return m.errorHandler
}

// Handle returns the module router. It expects i18n.Middleware upstream.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		m.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		m.errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/", wrap[struct{}](m, m.home))
	r.Get("/animals", wrap[pageRequest](m, m.listing, binder.Query()))
	r.Get("/animal/{id:[0-9]+}", wrap[animalRequest](m, m.detail, binder.Path()))
	r.Get("/animal/{id:[0-9]+}/suggestions", wrap[animalRequest](m, m.suggestions, binder.Path()))
	r.Get("/search", wrap[searchRequest](m, m.search, binder.Query()))
	r.Get("/contact", wrap[struct{}](m, m.contact))

	r.Get("/add-animal", wrap[struct{}](m, m.addForm))
	r.Post("/add-animal", wrap[adoption.Submission](m, m.addAnimal, binder.Form(), binder.JSON()))
	r.Post("/add-animal/validate", wrap[validateRequest](m, m.validate,
		binder.Query(), binder.Signals(), binder.Form(), binder.JSON()))

	r.Route("/api", func(api chi.Router) {
		api.Get("/animals", wrap[struct{}](m, m.apiAnimals))
		api.Get("/animal/{id:[0-9]+}", wrap[animalRequest](m, m.apiAnimal, binder.Path()))
		api.Get("/search", wrap[searchRequest](m, m.apiSearch, binder.Query()))
		api.Get("/random-animals", wrap[randomRequest](m, m.apiRandom, binder.Query()))
		api.Post("/postal-code", wrap[postalCodeRequest](m, m.postalCode,
			binder.Signals(), binder.Form(), binder.JSON()))
	})

	return r
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.errorHandler),
		handler.WithDecorators(timed[R](m.log)),
	)
}

// timed logs how long each handler took to build its response.
func timed[R any](log *slog.Logger) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "handled request",
				logger.Component("shelter"),
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Request().URL.Path),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

func (m *Module) t(ctx context.Context, key string) string {
	return m.tr.T(i18n.Locale(ctx), key, nil)
}

// atoiOr parses s, returning def when s is empty or not a number.
func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
