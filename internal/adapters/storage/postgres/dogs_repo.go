package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dogs-registry/internal/domain/dogs"
)

type DogsRepo struct {
	db DBTX
}

func NewDogsRepo(db DBTX) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, name,
	breed_id, owner_id, country_id, hobby_id,
	user_id, created_at, updated_at`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	if !validID(d.UserID) {
		return fmt.Errorf("user %q: %w", d.UserID, dogs.ErrInvalidInput)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO dogs (`+dogColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		d.ID,
		d.Name,
		d.BreedID,
		d.OwnerID,
		d.CountryID,
		d.HobbyID,
		d.UserID,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return mapDogErr(err)
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	if !validID(d.ID) {
		return dogs.ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE dogs
		SET
			name = $2,
			breed_id = $3,
			owner_id = $4,
			country_id = $5,
			hobby_id = $6,
			updated_at = $7
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.BreedID,
		d.OwnerID,
		d.CountryID,
		d.HobbyID,
		d.UpdatedAt,
	)
	if err != nil {
		return mapDogErr(err)
	}
	if tag.RowsAffected() == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return dogs.ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	if !validID(id) {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = $1`, id)

	d, err := scanDog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dogColumns+` FROM dogs ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDog(row pgx.Row) (dogs.Dog, error) {
	var d dogs.Dog
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.BreedID,
		&d.OwnerID,
		&d.CountryID,
		&d.HobbyID,
		&d.UserID,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func mapDogErr(err error) error {
	if err == nil {
		return nil
	}
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%s: %w", pgConstraint(err), dogs.ErrInvalidReference)
	}
	return err
}
