package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository stores teslo products and their images in PostgreSQL.
// Products are always read with their image URLs and owner.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productSelect = `
	SELECT
		p.id, p.title, p.price, p.description, p.slug, p.stock,
		p.sizes, p.gender, p.tags,
		COALESCE(
			(SELECT array_agg(pi.url ORDER BY pi.id) FROM product_images pi WHERE pi.product_id = p.id),
			'{}'::TEXT[]
		) AS images,
		u.id, u.email, u.full_name, u.is_active, u.roles
	FROM products p
	LEFT JOIN users u ON u.id = p.user_id`

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var (
		p        product.Product
		userID   *uuid.UUID
		email    *string
		fullName *string
		isActive *bool
		roles    []string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Price, &p.Description, &p.Slug, &p.Stock,
		&p.Sizes, &p.Gender, &p.Tags, &p.Images,
		&userID, &email, &fullName, &isActive, &roles,
	)
	if err != nil {
		return p, err
	}

	if userID != nil {
		p.User = &user.User{
			ID:       *userID,
			Email:    *email,
			FullName: *fullName,
			IsActive: *isActive,
			Roles:    roles,
		}
	}
	return p, nil
}

// FindAll pages through products ordered by title.
func (r *ProductRepository) FindAll(ctx context.Context, limit, offset int) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, productSelect+` ORDER BY p.title LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("table:products: %w", err)
	}

	list, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("table:products: %w", err)
	}
	return list, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.findOne(ctx, productSelect+` WHERE p.id = $1`, id)
}

// FindByTitleOrSlug matches the title case-insensitively or the slug
// exactly after lower-casing term.
func (r *ProductRepository) FindByTitleOrSlug(ctx context.Context, term string) (*product.Product, error) {
	return r.findOne(ctx, productSelect+` WHERE UPPER(p.title) = UPPER($1) OR p.slug = LOWER($1) LIMIT 1`, term)
}

func (r *ProductRepository) findOne(ctx context.Context, stmt string, arg any) (*product.Product, error) {
	rows, err := r.pool.Query(ctx, stmt, arg)
	if err != nil {
		return nil, fmt.Errorf("table:products: %w", err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("table:products: %w", err)
	}
	return &p, nil
}

// Create inserts the product and its images in one transaction.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product, ownerID uuid.UUID) (*product.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create product: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := `
		INSERT INTO products (title, price, description, slug, stock, sizes, gender, tags, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = tx.QueryRow(ctx, stmt,
		p.Title, p.Price, p.Description, p.Slug, p.Stock, p.Sizes, p.Gender, tagsOrEmpty(p.Tags), ownerID,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create product: %w", err)
	}

	return r.FindByID(ctx, p.ID)
}

// Update writes every column of p. When replaceImages is set the old
// images are deleted and p.Images inserted, all in one transaction.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product, replaceImages bool) (*product.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update product: %w", err)
	}
	defer tx.Rollback(ctx)

	if replaceImages {
		if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
			return nil, fmt.Errorf("delete product images: %w", err)
		}
		if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
			return nil, err
		}
	}

	stmt := `
		UPDATE products
		SET title = $2, price = $3, description = $4, slug = $5, stock = $6,
			sizes = $7, gender = $8, tags = $9, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, stmt,
		p.ID, p.Title, p.Price, p.Description, p.Slug, p.Stock, p.Sizes, p.Gender, tagsOrEmpty(p.Tags),
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update product: %w", err)
	}

	return r.FindByID(ctx, p.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every product; images go with them.
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}
	return nil
}

func insertImages(ctx context.Context, tx pgx.Tx, productID uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	rows := make([][]any, len(urls))
	for i, url := range urls {
		rows[i] = []any{url, productID}
	}

	_, err := tx.CopyFrom(ctx, pgx.Identifier{"product_images"}, []string{"url", "product_id"}, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("insert product images: %w", err)
	}
	return nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
