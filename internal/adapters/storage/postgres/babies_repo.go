package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"baby-tracker/internal/domain/babies"
)

type BabiesRepo struct {
	db *sql.DB
}

func NewBabiesRepo(db *sql.DB) *BabiesRepo {
	return &BabiesRepo{db: db}
}

func (r *BabiesRepo) ListByUser(ctx context.Context, userID string) ([]babies.Baby, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, gender, birth_date, created_at
		FROM babies
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]babies.Baby, 0)
	for rows.Next() {
		b, err := scanBaby(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BabiesRepo) GetByID(ctx context.Context, id int64) (babies.Baby, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, gender, birth_date, created_at
		FROM babies
		WHERE id = $1
	`, id)

	b, err := scanBaby(row)
	if err == sql.ErrNoRows {
		return babies.Baby{}, babies.ErrNotFound
	}
	return b, err
}

func (r *BabiesRepo) Create(ctx context.Context, b babies.Baby) (babies.Baby, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO babies (user_id, name, gender, birth_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		b.UserID,
		b.Name,
		string(b.Gender),
		toNullTime(b.BirthDate),
		b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return babies.Baby{}, err
	}
	return b, nil
}

func (r *BabiesRepo) Update(ctx context.Context, b babies.Baby) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE babies
		SET name = $2, gender = $3, birth_date = $4
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		string(b.Gender),
		toNullTime(b.BirthDate),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return babies.ErrNotFound
	}
	return nil
}

// Delete borra el perfil y cascadea sus logs a nivel de aplicación dentro de
// una sola transacción (las FKs además tienen ON DELETE CASCADE como red de
// seguridad). Borrar un id inexistente no es error.
func (r *BabiesRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, table := range []string{"feedings", "sleep_logs", "diaper_logs", "growth_logs", "memories"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE baby_id = $1`, table), id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM babies WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBaby(row rowScanner) (babies.Baby, error) {
	var b babies.Baby
	var gender string
	var bd sql.NullTime

	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &gender, &bd, &b.CreatedAt); err != nil {
		return babies.Baby{}, err
	}

	b.Gender = babies.Gender(gender)
	if bd.Valid {
		t := bd.Time
		b.BirthDate = &t
	}
	return b, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
