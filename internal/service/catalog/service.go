package catalog

import (
	"context"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
)

type CatalogServiceImpl struct {
	catalogRepo catalog.CatalogRepository
}

func NewCatalogService(catalogRepo catalog.CatalogRepository) catalog.CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// ========== PRODUCTS ==========

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	created, err := s.catalogRepo.CreateProduct(ctx, catalog.Product{
		PartType: catalog.PartType(req.PartType),
		Key:      req.Key,
		Name:     req.Name,
		Rate:     req.Rate,
	})
	if err != nil {
		return catalog.ProductResponse{}, err
	}

	return toProductResponse(created), nil
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, partType *catalog.PartType) ([]catalog.ProductResponse, error) {
	products, err := s.catalogRepo.ListProducts(ctx, partType)
	if err != nil {
		return nil, err
	}

	result := make([]catalog.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}

	return result, nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.catalogRepo.UpdateProduct(ctx, req)
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.catalogRepo.DeleteProduct(ctx, id)
}

// ========== JOB RATES ==========

func (s *CatalogServiceImpl) CreateJobRate(ctx context.Context, req catalog.CreateJobRateRequest) (catalog.JobRateResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.JobRateResponse{}, err
	}

	created, err := s.catalogRepo.CreateJobRate(ctx, catalog.JobTypeRate{
		PartType: catalog.PartType(req.PartType),
		JobName:  req.JobName,
		Rate:     req.Rate,
	})
	if err != nil {
		return catalog.JobRateResponse{}, err
	}

	return toJobRateResponse(created), nil
}

func (s *CatalogServiceImpl) ListJobRates(ctx context.Context, partType *catalog.PartType) ([]catalog.JobRateResponse, error) {
	rates, err := s.catalogRepo.ListJobRates(ctx, partType)
	if err != nil {
		return nil, err
	}

	result := make([]catalog.JobRateResponse, 0, len(rates))
	for _, jr := range rates {
		result = append(result, toJobRateResponse(jr))
	}

	return result, nil
}

func (s *CatalogServiceImpl) UpdateJobRate(ctx context.Context, req catalog.UpdateJobRateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.catalogRepo.UpdateJobRate(ctx, req)
}

func (s *CatalogServiceImpl) DeleteJobRate(ctx context.Context, id string) error {
	return s.catalogRepo.DeleteJobRate(ctx, id)
}

// ========== HELPERS ==========

func toProductResponse(p catalog.Product) catalog.ProductResponse {
	return catalog.ProductResponse{
		ID:       p.ID,
		PartType: string(p.PartType),
		Key:      p.Key,
		Name:     p.Name,
		Rate:     p.Rate,
	}
}

func toJobRateResponse(jr catalog.JobTypeRate) catalog.JobRateResponse {
	return catalog.JobRateResponse{
		ID:       jr.ID,
		PartType: string(jr.PartType),
		JobName:  jr.JobName,
		Rate:     jr.Rate,
	}
}
