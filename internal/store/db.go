package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
}

func NewStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) RunMigrations(schemaPath string) error {
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func clampLimit(limit int, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

type Product struct {
	ID           int        `json:"id"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	ImageURL     string     `json:"image_url,omitempty"`
	Retailer     string     `json:"retailer"`
	CurrentPrice *float64   `json:"current_price,omitempty"`
	LastChecked  *time.Time `json:"last_checked,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PricePoint struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Price     float64   `json:"price"`
	CheckedAt time.Time `json:"checked_at"`
}

// AddProduct inserts a tracked product, refreshing title/image/retailer on
// conflict so re-adding a URL picks up the latest extraction.
func (s *Store) AddProduct(ctx context.Context, p Product) (Product, error) {
	var price sql.NullFloat64
	if p.CurrentPrice != nil {
		price = sql.NullFloat64{Float64: *p.CurrentPrice, Valid: true}
	}

	row := s.db.QueryRowContext(ctx, `
INSERT INTO products (url, title, image_url, retailer, current_price, last_checked)
VALUES ($1, $2, $3, $4, $5, NOW())
ON CONFLICT (url) DO UPDATE SET
    title = EXCLUDED.title,
    image_url = EXCLUDED.image_url,
    retailer = EXCLUDED.retailer,
    current_price = COALESCE(EXCLUDED.current_price, products.current_price),
    last_checked = NOW()
RETURNING id, created_at
`, p.URL, p.Title, p.ImageURL, p.Retailer, price)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Store) GetProducts(ctx context.Context, limit, offset int) ([]Product, int, error) {
	limit = clampLimit(limit, 20, 200)
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, url, title, COALESCE(image_url, ''), retailer, current_price, last_checked, created_at
FROM products
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	return products, total, err
}

func (s *Store) GetProduct(ctx context.Context, id int) (Product, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, url, title, COALESCE(image_url, ''), retailer, current_price, last_checked, created_at
FROM products
WHERE id = $1
`, id)
	return scanProduct(row)
}

// GetTrackedProducts lists everything the background refresher should
// sweep, stalest first.
func (s *Store) GetTrackedProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, url, title, COALESCE(image_url, ''), retailer, current_price, last_checked, created_at
FROM products
ORDER BY last_checked NULLS FIRST
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// UpdatePrice records a refreshed price and appends a history row in one
// transaction. History is appended even when the price is unchanged so
// gaps in the chart mean "could not check", not "did not change".
func (s *Store) UpdatePrice(ctx context.Context, productID int, price float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
UPDATE products SET current_price = $1, last_checked = NOW() WHERE id = $2
`, price, productID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO price_history (product_id, price) VALUES ($1, $2)
`, productID, price); err != nil {
		return err
	}

	return tx.Commit()
}

// TouchLastChecked marks a product as checked without touching its price,
// used when a refresh reached the page but found no acceptable price.
func (s *Store) TouchLastChecked(ctx context.Context, productID int) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE products SET last_checked = NOW() WHERE id = $1
`, productID)
	return err
}

func (s *Store) AddPriceHistory(ctx context.Context, productID int, price float64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO price_history (product_id, price) VALUES ($1, $2)
`, productID, price)
	return err
}

func (s *Store) GetPriceHistory(ctx context.Context, productID, limit int) ([]PricePoint, error) {
	limit = clampLimit(limit, 100, 1000)

	rows, err := s.db.QueryContext(ctx, `
SELECT id, product_id, price, checked_at
FROM price_history
WHERE product_id = $1
ORDER BY checked_at DESC
LIMIT $2
`, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []PricePoint
	for rows.Next() {
		var p PricePoint
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Price, &p.CheckedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p           Product
		price       sql.NullFloat64
		lastChecked sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.URL, &p.Title, &p.ImageURL, &p.Retailer, &price, &lastChecked, &p.CreatedAt); err != nil {
		return Product{}, err
	}
	if price.Valid {
		v := price.Float64
		p.CurrentPrice = &v
	}
	if lastChecked.Valid {
		t := lastChecked.Time
		p.LastChecked = &t
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
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
