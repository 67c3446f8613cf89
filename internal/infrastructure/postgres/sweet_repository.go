package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	"github.com/mithaighar/sweetshop/internal/domain/repository"
)

const sweetColumns = "id, name, category, price, quantity, description, created_at"

type SweetRepository struct {
	pool *pgxpool.Pool
}

func NewSweetRepository(pool *pgxpool.Pool) *SweetRepository {
	return &SweetRepository{pool: pool}
}

func (r *SweetRepository) List(ctx context.Context) ([]entity.Sweet, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sweetColumns+` FROM sweets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSweets(rows)
}

func (r *SweetRepository) Search(ctx context.Context, f repository.SweetFilter) ([]entity.Sweet, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Name != nil {
		conds = append(conds, `name LIKE '%' || `+arg(*f.Name)+` || '%'`)
	}
	if f.Category != nil {
		conds = append(conds, `category LIKE '%' || `+arg(*f.Category)+` || '%'`)
	}
	if f.MinPrice != nil {
		conds = append(conds, `price >= `+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, `price <= `+arg(*f.MaxPrice))
	}

	q := `SELECT ` + sweetColumns + ` FROM sweets`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSweets(rows)
}

func (r *SweetRepository) Get(ctx context.Context, id int64) (*entity.Sweet, error) {
	return scanSweet(r.pool.QueryRow(ctx, `SELECT `+sweetColumns+` FROM sweets WHERE id = $1`, id))
}

func (r *SweetRepository) Create(ctx context.Context, s *entity.Sweet) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sweets (name, category, price, quantity, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, s.Name, s.Category, s.Price, s.Quantity, s.Description)
	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *SweetRepository) Update(ctx context.Context, id int64, upd repository.SweetUpdate) (*entity.Sweet, error) {
	// COALESCE keeps the stored value for fields absent from the partial
	// update; the whole statement is a single atomic read-modify-write.
	return scanSweet(r.pool.QueryRow(ctx, `
		UPDATE sweets
		SET name        = COALESCE($2, name),
		    category    = COALESCE($3, category),
		    price       = COALESCE($4, price),
		    quantity    = COALESCE($5, quantity),
		    description = COALESCE($6, description)
		WHERE id = $1
		RETURNING `+sweetColumns+`
	`, id, upd.Name, upd.Category, upd.Price, upd.Quantity, upd.Description))
}

func (r *SweetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SweetRepository) Purchase(ctx context.Context, id int64) (*entity.Sweet, error) {
	// Conditional decrement: the WHERE clause makes check-then-decrement a
	// single atomic unit per row, so concurrent purchases cannot drive the
	// quantity negative.
	s, err := scanSweet(r.pool.QueryRow(ctx, `
		UPDATE sweets
		SET quantity = quantity - 1
		WHERE id = $1 AND quantity > 0
		RETURNING `+sweetColumns+`
	`, id))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// Zero rows affected: distinguish a missing record from empty stock.
	if _, gErr := r.Get(ctx, id); gErr != nil {
		return nil, gErr
	}
	return nil, repository.ErrOutOfStock
}

func (r *SweetRepository) Restock(ctx context.Context, id int64, amount int) (*entity.Sweet, error) {
	return scanSweet(r.pool.QueryRow(ctx, `
		UPDATE sweets
		SET quantity = quantity + $2
		WHERE id = $1
		RETURNING `+sweetColumns+`
	`, id, amount))
}

func scanSweet(row pgx.Row) (*entity.Sweet, error) {
	s := &entity.Sweet{}
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Description, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func scanSweets(rows pgx.Rows) ([]entity.Sweet, error) {
	out := make([]entity.Sweet, 0)
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ repository.SweetRepository = (*SweetRepository)(nil)
