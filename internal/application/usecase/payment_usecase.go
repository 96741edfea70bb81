package usecase

import (
	"strings"
	"time"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// PaymentUseCase registers payments against orders in the caller's scope.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	notifUC     *NotificationUseCase
}

func NewPaymentUseCase(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, notifUC *NotificationUseCase) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo, notifUC: notifUC}
}

// Create records a payment for the identified order. The amount still
// owed is snapshotted from the order at payment time; approval and
// processing happen later on the supplier side. Users of the supplying
// company are notified that a payment came in.
func (uc *PaymentUseCase) Create(sess entity.Session, orderID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	scope, err := scopeFor(sess)
	if err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrValidation
	}
	order, err := uc.orderRepo.FindScoped(strings.ToLower(orderID), scope)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	payment := &entity.Payment{
		Date:       time.Now(),
		AmountPaid: in.Amount,
		Approved:   false,
		Processed:  false,
		AmountOwed: order.Amount,
		BuyerID:    order.BuyerID,
		OrderID:    order.ID,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	if err := uc.notifUC.NotifyPaymentReceived(order); err != nil {
		return nil, err
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}
