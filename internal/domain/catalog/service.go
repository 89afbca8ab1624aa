package catalog

import "context"

type CatalogService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	ListProducts(ctx context.Context, partType *PartType) ([]ProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error

	CreateJobRate(ctx context.Context, req CreateJobRateRequest) (JobRateResponse, error)
	ListJobRates(ctx context.Context, partType *PartType) ([]JobRateResponse, error)
	UpdateJobRate(ctx context.Context, req UpdateJobRateRequest) error
	DeleteJobRate(ctx context.Context, id string) error
}
