package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

func buyerSession() entity.Session {
	return entity.Session{UserID: 1, Role: entity.RoleBuyer, CompanyID: 10}
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:            1,
		UUID:          "aa11bb22-0000-0000-0000-000000000000",
		Amount:        decimal.RequireFromString("999.95"),
		OrderDate:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		OrderStatus:   entity.OrderPlaced,
		PaymentStatus: entity.PaymentUnprocessed,
		BuyerID:       10,
		SupplierID:    20,
	}
}

func TestOrderList_ScopesToBuyerCompany(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.List(buyerSession(), dto.OrderListQuery{})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleBuyer, repo.lastFilter.Scope.Role)
	assert.Equal(t, int64(10), repo.lastFilter.Scope.CompanyID)
}

func TestOrderList_MissingCompanyIsUnauthorized(t *testing.T) {
	uc := usecase.NewOrderUseCase(&fakeOrderRepo{orders: []*entity.Order{testOrder()}})

	_, err := uc.List(entity.Session{UserID: 1, Role: entity.RoleBuyer}, dto.OrderListQuery{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.List(entity.Session{UserID: 1, Role: "Onbekend", CompanyID: 10}, dto.OrderListQuery{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Administrators carry no company; order queries are always scoped
	// to one, so they are refused rather than handed the full list.
	_, err = uc.List(entity.Session{UserID: 1, Role: entity.RoleAdmin}, dto.OrderListQuery{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.GetByUUID(entity.Session{UserID: 1, Role: entity.RoleAdmin}, "aa11")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderList_TransformsItems(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.List(buyerSession(), dto.OrderListQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	item := out.Items[0]
	assert.Equal(t, "aa11bb22-0000-0000-0000-000000000000", item.UUID)
	assert.Equal(t, "999.95", item.Amount)
	assert.Equal(t, "GEPLAATST", item.OrderStatus)
	assert.Equal(t, "ONVERWERKT", item.PaymentStatus)
	assert.Len(t, out.Filters.OrderStatus, 6)
	assert.Len(t, out.Filters.PaymentStatus, 3)
}

func TestOrderList_ParsesFilters(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.List(buyerSession(), dto.OrderListQuery{
		UUID:          "AA11",
		Amount:        "150.50",
		OrderStatus:   "VERZONDEN",
		PaymentStatus: "betaald",
		From:          "2024-01-01",
		To:            "2024-12-31",
		Search:        "kerst",
		OrderBy:       "bedrag",
		Order:         "desc",
		Page:          2,
		Rows:          25,
	})
	require.NoError(t, err)

	f := repo.lastFilter
	assert.Equal(t, "aa11", f.UUIDContains)
	require.NotNil(t, f.Amount)
	assert.True(t, f.Amount.Equal(decimal.RequireFromString("150.50")))
	require.NotNil(t, f.OrderStatus)
	assert.Equal(t, entity.OrderShipped, *f.OrderStatus)
	require.NotNil(t, f.PaymentStatus)
	assert.Equal(t, entity.PaymentPaid, *f.PaymentStatus)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, "kerst", f.Search)
	assert.Equal(t, "bedrag", f.SortField)
	assert.False(t, f.SortAsc)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 25, f.PageSize)
}

func TestOrderList_InvalidFiltersRejected(t *testing.T) {
	uc := usecase.NewOrderUseCase(&fakeOrderRepo{})

	cases := []dto.OrderListQuery{
		{Amount: "niet-numeriek"},
		{OrderStatus: "geannuleerd"},
		{PaymentStatus: "gratis"},
		{From: "vorige week"},
		{Page: -3},
		{Rows: -1},
	}
	for _, q := range cases {
		_, err := uc.List(buyerSession(), q)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestOrderList_PaginationDefaultsAndCeiling(t *testing.T) {
	// 1 row with the default page size of 10 still means one page.
	repo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.List(buyerSession(), dto.OrderListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CurrentPage)
	assert.Equal(t, 1, out.TotalRows)
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, 10, repo.lastFilter.PageSize)
}

func TestOrderGetByUUID_LowercasesInput(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.GetByUUID(buyerSession(), "AA11BB22")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.InternalID)
	assert.Equal(t, int64(10), out.BuyerID)
	assert.Equal(t, int64(20), out.SupplierID)
}

func TestOrderGetByUUID_OutOfScopeIsNotFound(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc := usecase.NewOrderUseCase(repo)

	// Another buyer company must not learn the order exists.
	other := entity.Session{UserID: 2, Role: entity.RoleBuyer, CompanyID: 99}
	_, err := uc.GetByUUID(other, "aa11bb22")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
