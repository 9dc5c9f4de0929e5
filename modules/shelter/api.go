package shelter

import (
	"strings"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/svc/animals"
)

func (m *Module) apiAnimals(ctx handler.Context, _ struct{}) handler.Response {
	list, err := m.svc.All(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(nonNil(list))
}

func (m *Module) apiAnimal(ctx handler.Context, req animalRequest) handler.Response {
	a, err := m.svc.Get(ctx, req.ID)
	if animals.IsNotFound(err) {
		return handler.JSONError(handler.ErrNotFound, handler.WithJSONMessage(m.t(ctx, "api.animal_not_found")))
	}
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(a)
}

func (m *Module) apiSearch(ctx handler.Context, req searchRequest) handler.Response {
	query := strings.TrimSpace(req.Query)
	results, err := m.svc.Search(ctx, query)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(searchResponse{
		Results: nonNil(results),
		Count:   len(results),
		Query:   query,
	})
}

// apiRandom falls back to the default count when count is missing or not
// a number.
func (m *Module) apiRandom(ctx handler.Context, req randomRequest) handler.Response {
	list, err := m.svc.Random(ctx, atoiOr(req.Count, animals.DefaultRandomCount))
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(nonNil(list))
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(list []animals.Animal) []animals.Animal {
	if list == nil {
		return []animals.Animal{}
	}
	return list
}
