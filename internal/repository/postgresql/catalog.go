package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.CatalogRepository {
	return &catalogRepository{db: db}
}

// ========== PRODUCTS ==========

func (r *catalogRepository) CreateProduct(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (part_type, key, name, rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, part_type, key, name, rate, created_at, updated_at
	`

	var p catalog.Product
	err := q.QueryRow(ctx, query, product.PartType, product.Key, product.Name, product.Rate).Scan(
		&p.ID, &p.PartType, &p.Key, &p.Name, &p.Rate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_products_part_key") {
			return catalog.Product{}, catalog.ErrProductExists
		}
		return catalog.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, part_type, key, name, rate, created_at, updated_at FROM products WHERE id = $1`

	var p catalog.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PartType, &p.Key, &p.Name, &p.Rate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

func (r *catalogRepository) GetProductByKey(ctx context.Context, partType catalog.PartType, key string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, part_type, key, name, rate, created_at, updated_at FROM products WHERE part_type = $1 AND key = $2`

	var p catalog.Product
	err := q.QueryRow(ctx, query, partType, key).Scan(
		&p.ID, &p.PartType, &p.Key, &p.Name, &p.Rate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, fmt.Errorf("failed to get product by key: %w", err)
	}

	return p, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, partType *catalog.PartType) ([]catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, part_type, key, name, rate, created_at, updated_at FROM products`
	args := []interface{}{}
	if partType != nil {
		query += ` WHERE part_type = $1`
		args = append(args, *partType)
	}
	query += ` ORDER BY part_type, key`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.PartType, &p.Key, &p.Name, &p.Rate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Rate != nil {
		setParts = append(setParts, fmt.Sprintf("rate = $%d", argIdx))
		args = append(args, *req.Rate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM products WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// ========== JOB RATES ==========

func (r *catalogRepository) CreateJobRate(ctx context.Context, rate catalog.JobTypeRate) (catalog.JobTypeRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_type_rates (part_type, job_name, rate)
		VALUES ($1, $2, $3)
		RETURNING id, part_type, job_name, rate, created_at, updated_at
	`

	var jr catalog.JobTypeRate
	err := q.QueryRow(ctx, query, rate.PartType, rate.JobName, rate.Rate).Scan(
		&jr.ID, &jr.PartType, &jr.JobName, &jr.Rate, &jr.CreatedAt, &jr.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_job_rates_part_job") {
			return catalog.JobTypeRate{}, catalog.ErrJobRateExists
		}
		return catalog.JobTypeRate{}, fmt.Errorf("failed to create job rate: %w", err)
	}

	return jr, nil
}

func (r *catalogRepository) GetJobRate(ctx context.Context, partType catalog.PartType, jobName string) (catalog.JobTypeRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, part_type, job_name, rate, created_at, updated_at
		FROM job_type_rates
		WHERE part_type = $1 AND job_name = $2
	`

	var jr catalog.JobTypeRate
	err := q.QueryRow(ctx, query, partType, jobName).Scan(
		&jr.ID, &jr.PartType, &jr.JobName, &jr.Rate, &jr.CreatedAt, &jr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.JobTypeRate{}, catalog.ErrJobRateNotFound
		}
		return catalog.JobTypeRate{}, fmt.Errorf("failed to get job rate: %w", err)
	}

	return jr, nil
}

func (r *catalogRepository) ListJobRates(ctx context.Context, partType *catalog.PartType) ([]catalog.JobTypeRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, part_type, job_name, rate, created_at, updated_at FROM job_type_rates`
	args := []interface{}{}
	if partType != nil {
		query += ` WHERE part_type = $1`
		args = append(args, *partType)
	}
	query += ` ORDER BY part_type, job_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job rates: %w", err)
	}
	defer rows.Close()

	var rates []catalog.JobTypeRate
	for rows.Next() {
		var jr catalog.JobTypeRate
		if err := rows.Scan(&jr.ID, &jr.PartType, &jr.JobName, &jr.Rate, &jr.CreatedAt, &jr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job rate: %w", err)
		}
		rates = append(rates, jr)
	}

	return rates, nil
}

func (r *catalogRepository) UpdateJobRate(ctx context.Context, req catalog.UpdateJobRateRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Rate != nil {
		setParts = append(setParts, fmt.Sprintf("rate = $%d", argIdx))
		args = append(args, *req.Rate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE job_type_rates
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrJobRateNotFound
		}
		return fmt.Errorf("failed to update job rate: %w", err)
	}

	return nil
}

func (r *catalogRepository) DeleteJobRate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM job_type_rates WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrJobRateNotFound
		}
		return fmt.Errorf("failed to delete job rate: %w", err)
	}

	return nil
}
