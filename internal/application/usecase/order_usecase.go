package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

const defaultPageSize = 10

// OrderUseCase lists and fetches orders within the caller's company scope.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// List returns one page of orders visible to the session's company,
// filtered and sorted per the query. Buyers see orders they placed,
// suppliers the orders placed with them.
func (uc *OrderUseCase) List(sess entity.Session, q dto.OrderListQuery) (*dto.OrderListResponse, error) {
	scope, err := scopeFor(sess)
	if err != nil {
		return nil, err
	}

	filter := repository.OrderFilter{
		Scope:        scope,
		UUIDContains: strings.ToLower(q.UUID),
		Search:       q.Search,
		SortField:    q.OrderBy,
		SortAsc:      !strings.EqualFold(q.Order, "desc"),
		Page:         q.Page,
		PageSize:     q.Rows,
	}
	// Negative paging values are rejected; an absent rijen parameter
	// (zero value) falls back to the default page size.
	if filter.Page < 0 || filter.PageSize < 0 {
		return nil, domain.ErrValidation
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if q.Amount != "" {
		amount, err := decimal.NewFromString(q.Amount)
		if err != nil {
			return nil, domain.ErrValidation
		}
		filter.Amount = &amount
	}
	if q.OrderStatus != "" {
		st, ok := entity.ParseOrderStatus(q.OrderStatus)
		if !ok {
			return nil, domain.ErrValidation
		}
		filter.OrderStatus = &st
	}
	if q.PaymentStatus != "" {
		st, ok := entity.ParsePaymentStatus(q.PaymentStatus)
		if !ok {
			return nil, domain.ErrValidation
		}
		filter.PaymentStatus = &st
	}
	if filter.From, err = parseDate(q.From); err != nil {
		return nil, domain.ErrValidation
	}
	if filter.To, err = parseDate(q.To); err != nil {
		return nil, domain.ErrValidation
	}

	orders, err := uc.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderListItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.NewOrderListItem(o))
	}
	return &dto.OrderListResponse{
		Items:       items,
		CurrentPage: filter.Page,
		TotalRows:   total,
		TotalPages:  pageCount(total, filter.PageSize),
		Filters:     dto.NewOrderFilterCatalogue(),
	}, nil
}

// GetByUUID resolves an order by (a prefix of) its public identifier.
// Orders outside the caller's scope are indistinguishable from absent ones.
func (uc *OrderUseCase) GetByUUID(sess entity.Session, id string) (*dto.OrderDetailResponse, error) {
	scope, err := scopeFor(sess)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.FindScoped(strings.ToLower(id), scope)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewOrderDetailResponse(order)
	return &resp, nil
}

// scopeFor derives the mandatory company scope from the session. Every
// order query is scoped; a session without a buyer or supplier company
// (including administrators) never passes.
func scopeFor(sess entity.Session) (repository.OrderScope, error) {
	switch sess.Role {
	case entity.RoleBuyer, entity.RoleSupplier:
		if sess.CompanyID == 0 {
			return repository.OrderScope{}, domain.ErrUnauthorized
		}
		return repository.OrderScope{Role: sess.Role, CompanyID: sess.CompanyID}, nil
	}
	return repository.OrderScope{}, domain.ErrUnauthorized
}

func pageCount(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrValidation
}
