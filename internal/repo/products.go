package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// Product is the fixed projection of a catalogue row exposed by the API.
type Product struct {
	ID          string  `json:"id"`
	Metal       string  `json:"metal"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Purity      string  `json:"purity"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
}

// ProductsRepo reads catalogue rows from Postgres.
type ProductsRepo struct {
	Pool *pgxpool.Pool
}

const productProjection = `id, metal, name, weight, purity, price, description, condition`

// List returns every gold and silver product in store order.
func (r ProductsRepo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+productProjection+`
		FROM products
		WHERE metal IN ('Gold', 'Silver')
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// WarehouseStock returns the per-location stock map for one product.
func (r ProductsRepo) WarehouseStock(ctx context.Context, id string) (map[string]int, error) {
	var pgID pgtype.UUID
	if err := pgID.Scan(id); err != nil {
		return nil, ErrNotFound
	}
	var stock map[string]int
	err := r.Pool.QueryRow(ctx, `SELECT warehouse_stock FROM products WHERE id = $1`, pgID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if stock == nil {
		stock = map[string]int{}
	}
	return stock, nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p      Product
		id     pgtype.UUID
		weight pgtype.Numeric
	)
	if err := row.Scan(&id, &p.Metal, &p.Name, &weight, &p.Purity, &p.Price, &p.Description, &p.Condition); err != nil {
		return Product{}, err
	}
	p.ID = uuidString(id)
	if weight.Valid {
		f, err := weight.Float64Value()
		if err == nil && f.Valid {
			p.Weight = f.Float64
		}
	}
	return p, nil
}
