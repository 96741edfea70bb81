package dto

import (
	"time"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

type NotificationListQuery struct {
	Page    int    `query:"pagina"`
	Rows    int    `query:"rijen"`
	Kind    string `query:"notificatieSoort"`
	Content string `query:"content"`
	Order   string `query:"bestelling"`
	From    string `query:"vanDatum"`
	To      string `query:"totDatum"`
}

type NotificationItem struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"datum"`
	Kind    string    `json:"notificatieSoort"`
	Status  string    `json:"status"`
	OrderID int64     `json:"bestellingid"`
	Text    string    `json:"tekst"`
	Avatar  string    `json:"avatar"`
}

type NotificationFilterCatalogue struct {
	Kind map[int]string `json:"notificatieSoort"`
}

type NotificationListResponse struct {
	Items       []NotificationItem          `json:"items"`
	CurrentPage int                         `json:"huidigePagina"`
	TotalRows   int                         `json:"aantalRijen"`
	TotalPages  int                         `json:"aantalPaginas"`
	Filters     NotificationFilterCatalogue `json:"filters"`
}

// RecentNotificationsResponse backs the bell dropdown: the newest unseen
// notifications plus how many there are.
type RecentNotificationsResponse struct {
	Items []NotificationItem `json:"items"`
	Count int                `json:"count"`
}

// NotificationDetailResponse adds the owning user and the public order
// identifier so the client can link through to the order.
type NotificationDetailResponse struct {
	NotificationItem
	UserID    int64  `json:"gebruikerid"`
	OrderUUID string `json:"bestellingUuid"`
}

type CreateNotificationRequest struct {
	OrderID    int64 `json:"bestellingId"`
	BuyerID    int64 `json:"klantId"`
	SupplierID int64 `json:"leverancierId"`
}

type UpdateNotificationRequest struct {
	Status string `json:"status"`
}

func NewNotificationItem(n *entity.Notification) NotificationItem {
	return NotificationItem{
		ID:      n.ID,
		Date:    n.Date,
		Kind:    n.Kind,
		Status:  n.Status,
		OrderID: n.OrderID,
		Text:    n.Text,
		Avatar:  n.Avatar,
	}
}

func NewNotificationFilterCatalogue() NotificationFilterCatalogue {
	return NotificationFilterCatalogue{Kind: entity.NotificationCatalogue()}
}
