package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"betaalbedrag"`
}

// PaymentResponse uses the legacy column-style keys the frontend binds to.
type PaymentResponse struct {
	ID         int64           `json:"ID"`
	Date       time.Time       `json:"BETAALDATUM"`
	AmountPaid decimal.Decimal `json:"BETAALDEBEDRAG"`
	Approved   bool            `json:"ISGOEDGEKEURD"`
	Processed  bool            `json:"ISVERWERKT"`
	AmountOwed decimal.Decimal `json:"TEBETALEN"`
	BuyerID    int64           `json:"KlantID"`
	OrderID    int64           `json:"BestellingID"`
}

func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Date:       p.Date,
		AmountPaid: p.AmountPaid,
		Approved:   p.Approved,
		Processed:  p.Processed,
		AmountOwed: p.AmountOwed,
		BuyerID:    p.BuyerID,
		OrderID:    p.OrderID,
	}
}
