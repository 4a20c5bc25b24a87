package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// ProductService manages the assembled-product catalogue.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:               newID(),
		SKU:              in.SKU,
		Name:             in.Name,
		Category:         in.Category,
		UnitPrice:        in.UnitPrice,
		UnitCost:         in.UnitCost,
		BuildTimeMinutes: in.BuildTimeMinutes,
		BOM:              in.BOM,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sku", created.SKU).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.CreateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SKU = in.SKU
	product.Name = in.Name
	product.Category = in.Category
	product.UnitPrice = in.UnitPrice
	product.UnitCost = in.UnitCost
	product.BuildTimeMinutes = in.BuildTimeMinutes
	product.BOM = in.BOM
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
