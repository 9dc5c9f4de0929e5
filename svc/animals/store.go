package animals

import "context"

// Store persists adoption listings.
//
// Search receives a trimmed, lowercased, non-empty query and matches it as a
// substring of name, species, breed, description or city. Random returns up
// to n distinct listings in random order.
type Store interface {
	List(ctx context.Context, offset, limit int) ([]Animal, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (Animal, error)
	Search(ctx context.Context, query string) ([]Animal, error)
	Random(ctx context.Context, n int) ([]Animal, error)
	Create(ctx context.Context, a Animal) (Animal, error)
}
