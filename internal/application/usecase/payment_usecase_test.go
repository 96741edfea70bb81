package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

func buildPaymentUC(paymentRepo *fakePaymentRepo, orderRepo *fakeOrderRepo) (*usecase.PaymentUseCase, *fakeNotifRepo) {
	notifRepo := newFakeNotifRepo()
	userRepo := newFakeUserRepo()
	userRepo.suppliers[20] = []*entity.User{{ID: 31}}
	companyRepo := newFakeCompanyRepo()
	companyRepo.companies[10] = &entity.Company{ID: 10, Name: "EduBright"}
	notifUC := usecase.NewNotificationUseCase(notifRepo, orderRepo, userRepo, companyRepo, nil)
	return usecase.NewPaymentUseCase(paymentRepo, orderRepo, notifUC), notifRepo
}

func TestCreatePayment_SnapshotsOrderAmount(t *testing.T) {
	order := testOrder()
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{order}}
	paymentRepo := &fakePaymentRepo{}
	uc, notifRepo := buildPaymentUC(paymentRepo, orderRepo)

	out, err := uc.Create(buyerSession(), "AA11BB22", dto.CreatePaymentRequest{
		Amount: decimal.RequireFromString("500.00"),
	})
	require.NoError(t, err)

	// The amount owed is frozen from the order; approval happens later.
	assert.True(t, out.AmountOwed.Equal(decimal.RequireFromString("999.95")))
	assert.True(t, out.AmountPaid.Equal(decimal.RequireFromString("500.00")))
	assert.False(t, out.Approved)
	assert.False(t, out.Processed)
	assert.Equal(t, order.BuyerID, out.BuyerID)
	assert.Equal(t, order.ID, out.OrderID)
	require.Len(t, paymentRepo.created, 1)

	// The supplying company's users hear about the payment.
	require.Len(t, notifRepo.notifs, 1)
	assert.Equal(t, entity.KindPaymentReceived, notifRepo.notifs[0].Kind)
	assert.Equal(t, int64(31), notifRepo.notifs[0].UserID)
}

func TestCreatePayment_UnknownOrderNotFound(t *testing.T) {
	uc, _ := buildPaymentUC(&fakePaymentRepo{}, &fakeOrderRepo{})

	_, err := uc.Create(buyerSession(), "deadbeef", dto.CreatePaymentRequest{
		Amount: decimal.New(1, 0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePayment_OutOfScopeOrderNotFound(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc, _ := buildPaymentUC(&fakePaymentRepo{}, orderRepo)

	other := entity.Session{UserID: 2, Role: entity.RoleBuyer, CompanyID: 99}
	_, err := uc.Create(other, "aa11bb22", dto.CreatePaymentRequest{Amount: decimal.New(1, 0)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePayment_NegativeAmountRejected(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []*entity.Order{testOrder()}}
	uc, _ := buildPaymentUC(&fakePaymentRepo{}, orderRepo)

	_, err := uc.Create(buyerSession(), "aa11bb22", dto.CreatePaymentRequest{
		Amount: decimal.RequireFromString("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreatePayment_NoCompanyUnauthorized(t *testing.T) {
	uc, _ := buildPaymentUC(&fakePaymentRepo{}, &fakeOrderRepo{})

	_, err := uc.Create(entity.Session{UserID: 1, Role: entity.RoleBuyer}, "aa11", dto.CreatePaymentRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
