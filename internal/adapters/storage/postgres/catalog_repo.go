package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dogs-registry/internal/domain/catalog"
)

// Cada kind vive en su propia tabla (las FKs de dogs apuntan a ellas).
var catalogTables = map[catalog.Kind]string{
	catalog.KindBreed:   "breeds",
	catalog.KindCountry: "countries",
	catalog.KindHobby:   "hobbies",
}

type CatalogRepo struct {
	db DBTX
}

func NewCatalogRepo(db DBTX) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func tableFor(kind catalog.Kind) (string, error) {
	t, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("kind %q: %w", kind, catalog.ErrInvalidInput)
	}
	return t, nil
}

func (r *CatalogRepo) Create(ctx context.Context, e catalog.Entry) error {
	table, err := tableFor(e.Kind)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO `+table+` (id, name, created_at) VALUES ($1,$2,$3)`,
		e.ID, e.Name, e.CreatedAt,
	)
	if pgCode(err) == codeUniqueViolation {
		return fmt.Errorf("%s %q: %w", e.Kind, e.Name, catalog.ErrConflict)
	}
	return err
}

func (r *CatalogRepo) GetByID(ctx context.Context, kind catalog.Kind, id string) (catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return catalog.Entry{}, err
	}
	if !validID(id) {
		return catalog.Entry{}, catalog.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM `+table+` WHERE id = $1`, id)
	return scanEntry(row, kind)
}

func (r *CatalogRepo) GetByName(ctx context.Context, kind catalog.Kind, name string) (catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return catalog.Entry{}, err
	}

	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM `+table+` WHERE name = $1`, name)
	return scanEntry(row, kind)
}

func (r *CatalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM `+table+` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Entry, 0)
	for rows.Next() {
		e := catalog.Entry{Kind: kind}
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(row pgx.Row, kind catalog.Kind) (catalog.Entry, error) {
	e := catalog.Entry{Kind: kind}
	if err := row.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Entry{}, catalog.ErrNotFound
		}
		return catalog.Entry{}, err
	}
	return e, nil
}
