package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

type ProductListQuery struct {
	Page   int    `query:"pagina"`
	Rows   int    `query:"rijen"`
	Search string `query:"zoek"`
}

type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"naam"`
	Stock     int             `json:"aantalInStock"`
	UnitPrice decimal.Decimal `json:"eenheidsprijs"`
}

type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Count      int               `json:"count"`
	TotalPages int               `json:"aantalPaginas"`
}

// OrderLineResponse joins an order line with its product so the order
// detail view can render name, stock and price in one call.
type OrderLineResponse struct {
	ID        int64           `json:"ID"`
	ProductID int64           `json:"PRODUCTID"`
	Quantity  int             `json:"AANTAL"`
	Name      string          `json:"NAAM"`
	Stock     int             `json:"AANTALINSTOCK"`
	UnitPrice decimal.Decimal `json:"EENHEIDSPRIJS"`
}

type OrderLineListResponse struct {
	Items []OrderLineResponse `json:"productenInBestelling"`
}

func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		UnitPrice: p.UnitPrice,
	}
}

func NewOrderLineResponse(l *repository.OrderLineWithProduct) OrderLineResponse {
	return OrderLineResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Name:      l.Name,
		Stock:     l.Stock,
		UnitPrice: l.UnitPrice,
	}
}
