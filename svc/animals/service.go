package animals

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/pkg/sanitizer"
	"github.com/dmitrymomot/petadopt/svc/adoption"
)

const (
	// DefaultPerPage is the listing page size.
	DefaultPerPage = 12
	// DefaultRandomCount is used when a caller does not ask for a count.
	DefaultRandomCount = 5
	// MaxRandomCount caps random selections.
	MaxRandomCount = 50
)

var searchQuery = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)

// Page is one page of the catalogue. Pages are 1-based.
type Page struct {
	Animals    []Animal `json:"animals"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// Service is the catalogue use-case layer: paging, search, random picks and
// validated creation of listings.
type Service struct {
	store   Store
	engine  *adoption.Engine
	perPage int
	log     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithPerPage overrides the page size. Non-positive values are ignored.
func WithPerPage(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// WithLogger sets the service logger. Nil keeps the default.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService wires a Service. A nil engine uses the default adoption fields.
func NewService(store Store, engine *adoption.Engine, opts ...ServiceOption) *Service {
	if engine == nil {
		engine = adoption.NewEngine()
	}
	s := &Service{
		store:   store,
		engine:  engine,
		perPage: DefaultPerPage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine exposes the form engine used by Add.
func (s *Service) Engine() *adoption.Engine {
	return s.engine
}

// Page returns the requested page; values below 1 mean the first page.
// Pages past the end are empty but still report the totals.
func (s *Service) Page(ctx context.Context, page int) (Page, error) {
	page = max(page, 1)

	total, err := s.store.Count(ctx)
	if err != nil {
		return Page{}, err
	}

	list, err := s.store.List(ctx, (page-1)*s.perPage, s.perPage)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Animals:    list,
		Page:       page,
		PerPage:    s.perPage,
		Total:      total,
		TotalPages: (total + s.perPage - 1) / s.perPage,
	}, nil
}

// All returns every listing.
func (s *Service) All(ctx context.Context) ([]Animal, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, 0, total)
}

func (s *Service) Get(ctx context.Context, id int64) (Animal, error) {
	return s.store.Get(ctx, id)
}

// Search matches query case-insensitively; a blank query returns everything.
func (s *Service) Search(ctx context.Context, query string) ([]Animal, error) {
	q := searchQuery(query)
	if q == "" {
		return s.All(ctx)
	}
	return s.store.Search(ctx, q)
}

// Random picks up to count distinct listings. count is clamped to
// [1, MaxRandomCount]; fewer are returned when the catalogue is smaller.
func (s *Service) Random(ctx context.Context, count int) ([]Animal, error) {
	return s.store.Random(ctx, min(max(count, 1), MaxRandomCount))
}

// Add validates sub and stores it. On invalid input it returns the full
// report together with its validator.ValidationErrors.
func (s *Service) Add(ctx context.Context, sub adoption.Submission) (Animal, adoption.Report, error) {
	report := s.engine.Validate(sub)
	if !report.Valid {
		return Animal{}, report, report.Errors()
	}

	a, err := FromReport(report)
	if err != nil {
		return Animal{}, report, err
	}

	created, err := s.store.Create(ctx, a)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to store animal",
			logger.Component("animals"),
			logger.Error(err),
		)
		return Animal{}, report, err
	}

	s.log.InfoContext(ctx, "animal listed",
		logger.Component("animals"),
		logger.AnimalID(created.ID),
		slog.String("species", created.Species),
	)
	return created, report, nil
}

// IsNotFound reports whether err means the listing does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
