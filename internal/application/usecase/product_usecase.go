package usecase

import (
	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// ProductUseCase serves the public product catalogue.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List returns one page of products, optionally filtered on name.
func (uc *ProductUseCase) List(q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	page := q.Page
	if page < 0 {
		page = 0
	}
	pageSize := q.Rows
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	products, err := uc.productRepo.List(q.Search, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count(q.Search)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Count:      total,
		TotalPages: pageCount(total, pageSize),
	}, nil
}
