package catalog

import "context"

type CatalogRepository interface {
	// Products
	CreateProduct(ctx context.Context, product Product) (Product, error)
	GetProductByID(ctx context.Context, id string) (Product, error)
	GetProductByKey(ctx context.Context, partType PartType, key string) (Product, error)
	ListProducts(ctx context.Context, partType *PartType) ([]Product, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error

	// Job rates
	CreateJobRate(ctx context.Context, rate JobTypeRate) (JobTypeRate, error)
	GetJobRate(ctx context.Context, partType PartType, jobName string) (JobTypeRate, error)
	ListJobRates(ctx context.Context, partType *PartType) ([]JobTypeRate, error)
	UpdateJobRate(ctx context.Context, req UpdateJobRateRequest) error
	DeleteJobRate(ctx context.Context, id string) error
}
