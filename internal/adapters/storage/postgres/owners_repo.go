package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dogs-registry/internal/domain/owners"
)

type OwnersRepo struct {
	db DBTX
}

func NewOwnersRepo(db DBTX) *OwnersRepo {
	return &OwnersRepo{db: db}
}

const ownerColumns = `
	id, user_id,
	first_name, last_name, phone_number,
	created_at, updated_at`

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	if !validID(o.UserID) {
		return fmt.Errorf("user %q: %w", o.UserID, owners.ErrInvalidInput)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO owners (`+ownerColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		o.ID,
		o.UserID,
		o.FirstName,
		o.LastName,
		o.PhoneNumber,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("user %q does not exist: %w", o.UserID, owners.ErrInvalidInput)
	}
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	if !validID(o.ID) {
		return owners.ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			phone_number = $4,
			updated_at = $5
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.PhoneNumber,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return owners.ErrNotFound
	}
	return nil
}

// Delete borra el owner; dogs.owner_id tiene ON DELETE CASCADE.
func (r *OwnersRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return owners.ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	if !validID(id) {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id)

	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOwner(row pgx.Row) (owners.Owner, error) {
	var o owners.Owner
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.FirstName,
		&o.LastName,
		&o.PhoneNumber,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
