package usecase

import (
	"strings"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// OrderLineUseCase lists the product lines of a single order.
type OrderLineUseCase struct {
	lineRepo  repository.OrderLineRepository
	orderRepo repository.OrderRepository
}

func NewOrderLineUseCase(lineRepo repository.OrderLineRepository, orderRepo repository.OrderRepository) *OrderLineUseCase {
	return &OrderLineUseCase{lineRepo: lineRepo, orderRepo: orderRepo}
}

// ListByOrder returns the lines of the identified order, joined with
// their products. Unlike the order detail route, an order outside the
// company's reach yields Forbidden, whether it exists or not.
func (uc *OrderLineUseCase) ListByOrder(sess entity.Session, orderID string) (*dto.OrderLineListResponse, error) {
	order, err := uc.orderRepo.FindByUUID(strings.ToLower(orderID))
	if err != nil {
		return nil, err
	}
	if sess.CompanyID == 0 {
		return nil, domain.ErrForbidden
	}
	if order == nil || (order.BuyerID != sess.CompanyID && order.SupplierID != sess.CompanyID) {
		return nil, domain.ErrForbidden
	}

	lines, err := uc.lineRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.NewOrderLineResponse(l))
	}
	return &dto.OrderLineListResponse{Items: items}, nil
}
