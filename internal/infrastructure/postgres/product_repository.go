package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, weight, attributes, minimum_stock, created_at, updated_at`

// Create persiste un producto. SKU duplicado devuelve domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, nullableString(product.Description),
		product.Weight, nullableBytes(product.Attributes), product.MinimumStock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU obtiene un producto por SKU. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(query, sku)
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var description *string
	var attributes []byte
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &description, &p.Weight, &attributes,
		&p.MinimumStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if description != nil {
		p.Description = *description
	}
	p.Attributes = attributes
	return &p, nil
}

// Update actualiza la ficha del producto. SKU en uso devuelve domain.ErrDuplicate;
// producto inexistente, domain.ErrNotFound.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, weight = $5, attributes = $6,
		    minimum_stock = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, nullableString(product.Description),
		product.Weight, nullableBytes(product.Attributes), product.MinimumStock,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search lista productos; term vacío devuelve todos. Busca en nombre y SKU
// sin distinguir mayúsculas; los metacaracteres de LIKE en el término se
// tratan como literales.
func (r *ProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if term != "" {
		query += ` WHERE name ILIKE $1 OR sku ILIKE $1`
		args = append(args, "%"+escapeLike(term)+"%")
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var description *string
		var attributes []byte
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &description, &p.Weight,
			&attributes, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if description != nil {
			p.Description = *description
		}
		p.Attributes = attributes
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto. Devuelve domain.ErrNotFound si no existe.
// Las dependencias (movimientos, saldo) deben eliminarse antes, en la misma tx.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// escapeLike escapa los metacaracteres de LIKE/ILIKE (el escape por defecto
// de PostgreSQL es la barra invertida).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
