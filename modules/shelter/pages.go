package shelter

import (
	"strings"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/svc/animals"
)

func (m *Module) home(ctx handler.Context, _ struct{}) handler.Response {
	featured, err := m.svc.Random(ctx, animals.DefaultRandomCount)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(m.views.HomePage(animals.NewCards(featured)))
}

func (m *Module) listing(ctx handler.Context, req pageRequest) handler.Response {
	page, err := m.svc.Page(ctx, atoiOr(req.Page, 1))
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(m.views.ListingPage(page))
}

// detail sends unknown IDs back to the listing instead of a 404 page.
func (m *Module) detail(ctx handler.Context, req animalRequest) handler.Response {
	a, err := m.svc.Get(ctx, req.ID)
	if animals.IsNotFound(err) {
		return handler.Redirect("/animals")
	}
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(m.views.DetailPage(animals.NewCard(a), a))
}

func (m *Module) suggestions(ctx handler.Context, req animalRequest) handler.Response {
	return handler.Templ(m.views.SuggestionBlock(m.suggest.Suggest(ctx, req.ID)))
}

func (m *Module) search(ctx handler.Context, req searchRequest) handler.Response {
	query := strings.TrimSpace(req.Query)
	results, err := m.svc.Search(ctx, query)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(m.views.SearchPage(query, animals.NewCards(results)))
}

func (m *Module) contact(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(m.views.ContactPage())
}
