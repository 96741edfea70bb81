package dto

import (
	"strings"
	"time"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

// OrderListQuery carries the supported query parameters for listing orders.
// Empty strings mean the filter is absent.
type OrderListQuery struct {
	Page          int    `query:"pagina"`
	Rows          int    `query:"rijen"`
	UUID          string `query:"id"`
	Amount        string `query:"bedrag"`
	From          string `query:"vanDatum"`
	To            string `query:"totDatum"`
	OrderStatus   string `query:"bestellingstatus"`
	PaymentStatus string `query:"betaalstatus"`
	Search        string `query:"zoek"`
	Order         string `query:"order"`
	OrderBy       string `query:"order_by"`
}

// OrderListItem is the list projection of an order. Statuses are rendered
// as uppercase Dutch labels, the amount with two decimals.
type OrderListItem struct {
	UUID          string    `json:"id"`
	Date          time.Time `json:"datum"`
	Amount        string    `json:"bedrag"`
	OrderStatus   string    `json:"bestellingstatus"`
	PaymentStatus string    `json:"betaalstatus"`
}

// OrderFilterCatalogue lists every status value a client may filter on.
type OrderFilterCatalogue struct {
	OrderStatus   map[entity.OrderStatus]string   `json:"bestellingstatus"`
	PaymentStatus map[entity.PaymentStatus]string `json:"betaalstatus"`
}

type OrderListResponse struct {
	Items       []OrderListItem      `json:"items"`
	CurrentPage int                  `json:"huidigePagina"`
	TotalRows   int                  `json:"aantalRijen"`
	TotalPages  int                  `json:"aantalPaginas"`
	Filters     OrderFilterCatalogue `json:"filters"`
}

// OrderDetailResponse extends the list projection with the delivery
// address and the internal identifiers a detail view needs.
type OrderDetailResponse struct {
	OrderListItem
	InternalID int64  `json:"oudId"`
	BuyerID    int64  `json:"klantid"`
	SupplierID int64  `json:"leverancierid"`
	Street     string `json:"STRAAT"`
	Number     int    `json:"HUISNUMMER"`
	PostalCode int    `json:"POSTCODE"`
	City       string `json:"GEMEENTE"`
}

// NewOrderListItem maps an order entity to its list projection.
func NewOrderListItem(o *entity.Order) OrderListItem {
	return OrderListItem{
		UUID:          o.UUID,
		Date:          o.OrderDate,
		Amount:        o.Amount.StringFixed(2),
		OrderStatus:   strings.ToUpper(o.OrderStatus.Label()),
		PaymentStatus: strings.ToUpper(o.PaymentStatus.Label()),
	}
}

func NewOrderDetailResponse(o *entity.Order) OrderDetailResponse {
	return OrderDetailResponse{
		OrderListItem: NewOrderListItem(o),
		InternalID:    o.ID,
		BuyerID:       o.BuyerID,
		SupplierID:    o.SupplierID,
		Street:        o.Street,
		Number:        o.Number,
		PostalCode:    o.PostalCode,
		City:          o.City,
	}
}

// NewOrderFilterCatalogue returns the full status catalogue that list
// responses embed so clients can render their filter widgets.
func NewOrderFilterCatalogue() OrderFilterCatalogue {
	return OrderFilterCatalogue{
		OrderStatus:   entity.OrderStatusCatalogue(),
		PaymentStatus: entity.PaymentStatusCatalogue(),
	}
}
