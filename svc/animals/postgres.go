package animals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const animalColumns = `id, name, species, breed, age, description, owner_email, address, city, postal_code, image_url, created_at`

// PostgresStore keeps listings in the animals table created by Migrations.
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, offset, limit int) ([]Animal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+animalColumns+` FROM animals ORDER BY id LIMIT $1 OFFSET $2`,
		limit, max(offset, 0),
	)
	return collect(rows, err)
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM animals`).Scan(&n); err != nil {
		return 0, errors.Join(ErrStorage, err)
	}
	return n, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (Animal, error) {
	row := s.db.QueryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Animal{}, ErrNotFound
	}
	if err != nil {
		return Animal{}, errors.Join(ErrStorage, err)
	}
	return a, nil
}

// Search matches with strpos, so % and _ in q are literal.
func (s *PostgresStore) Search(ctx context.Context, query string) ([]Animal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+animalColumns+` FROM animals
		WHERE strpos(lower(name), $1) > 0
		   OR strpos(lower(species), $1) > 0
		   OR strpos(lower(breed), $1) > 0
		   OR strpos(lower(description), $1) > 0
		   OR strpos(lower(city), $1) > 0
		ORDER BY id`,
		query,
	)
	return collect(rows, err)
}

func (s *PostgresStore) Random(ctx context.Context, n int) ([]Animal, error) {
	if n <= 0 {
		return []Animal{}, nil
	}
	rows, err := s.db.Query(ctx, `SELECT `+animalColumns+` FROM animals ORDER BY random() LIMIT $1`, n)
	return collect(rows, err)
}

func (s *PostgresStore) Create(ctx context.Context, a Animal) (Animal, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO animals (name, species, breed, age, description, owner_email, address, city, postal_code, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		a.Name, a.Species, a.Breed, a.Age, a.Description, a.OwnerEmail, a.Address, a.City, a.PostalCode, a.ImageURL,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return Animal{}, errors.Join(ErrStorage, err)
	}
	return a, nil
}

func scanAnimal(row pgx.Row) (Animal, error) {
	var a Animal
	err := row.Scan(
		&a.ID, &a.Name, &a.Species, &a.Breed, &a.Age, &a.Description,
		&a.OwnerEmail, &a.Address, &a.City, &a.PostalCode, &a.ImageURL, &a.CreatedAt,
	)
	return a, err
}

func collect(rows pgx.Rows, err error) ([]Animal, error) {
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Animal, error) {
		return scanAnimal(row)
	})
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	if list == nil {
		list = []Animal{}
	}
	return list, nil
}
