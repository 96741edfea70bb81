package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

const recentLimit = 5

// NotificationUseCase manages per-user notifications and the read
// lifecycle nieuw -> ongelezen -> gelezen.
type NotificationUseCase struct {
	notifRepo   repository.NotificationRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	notifier    Notifier
}

func NewNotificationUseCase(
	notifRepo repository.NotificationRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	notifier Notifier,
) *NotificationUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &NotificationUseCase{
		notifRepo:   notifRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
	}
}

// List returns one page of the caller's notifications, newest first.
// Listing counts as seeing: every notification still marked nieuw is
// moved to ongelezen afterwards, so the next recent-count drops.
func (uc *NotificationUseCase) List(sess entity.Session, q dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	filter := repository.NotificationFilter{UserID: sess.UserID}
	if q.Kind != "" {
		code, err := strconv.Atoi(q.Kind)
		if err != nil {
			return nil, domain.ErrValidation
		}
		kind := entity.KindForCode(code)
		if kind == "" {
			return nil, domain.ErrValidation
		}
		filter.Kind = kind
	}
	filter.TextContains = q.Content
	if q.Order != "" {
		orderID, err := strconv.ParseInt(q.Order, 10, 64)
		if err != nil {
			return nil, domain.ErrValidation
		}
		filter.OrderID = &orderID
	}
	var err error
	if filter.From, err = parseDate(q.From); err != nil {
		return nil, domain.ErrValidation
	}
	if filter.To, err = parseDate(q.To); err != nil {
		return nil, domain.ErrValidation
	}

	page := q.Page
	if page < 0 {
		page = 0
	}
	pageSize := q.Rows
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	notifs, err := uc.notifRepo.List(filter, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := uc.notifRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	if err := uc.notifRepo.BulkStatus(sess.UserID, entity.StatusNew, entity.StatusUnread); err != nil {
		return nil, err
	}

	items := make([]dto.NotificationItem, 0, len(notifs))
	for _, n := range notifs {
		items = append(items, dto.NewNotificationItem(n))
	}
	return &dto.NotificationListResponse{
		Items:       items,
		CurrentPage: page,
		TotalRows:   total,
		TotalPages:  pageCount(total, pageSize),
		Filters:     dto.NewNotificationFilterCatalogue(),
	}, nil
}

// Recent returns the newest notifications the caller has not read yet,
// capped for the bell dropdown.
func (uc *NotificationUseCase) Recent(sess entity.Session) (*dto.RecentNotificationsResponse, error) {
	notifs, err := uc.notifRepo.Recent(sess.UserID, []string{entity.StatusNew, entity.StatusUnread}, recentLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationItem, 0, len(notifs))
	for _, n := range notifs {
		items = append(items, dto.NewNotificationItem(n))
	}
	return &dto.RecentNotificationsResponse{Items: items, Count: len(items)}, nil
}

// GetByID fetches one of the caller's notifications and marks it gelezen.
// The response carries the public identifier of the related order.
func (uc *NotificationUseCase) GetByID(sess entity.Session, id int64) (*dto.NotificationDetailResponse, error) {
	notif, err := uc.notifRepo.GetForUser(id, sess.UserID)
	if err != nil {
		return nil, err
	}
	if notif == nil {
		return nil, domain.ErrNotFound
	}
	if notif.Status != entity.StatusRead {
		if err := uc.notifRepo.UpdateStatus(notif.ID, entity.StatusRead); err != nil {
			return nil, err
		}
		notif.Status = entity.StatusRead
	}
	var orderUUID string
	if order, err := uc.orderRepo.GetByID(notif.OrderID); err == nil && order != nil {
		orderUUID = order.UUID
	}
	return &dto.NotificationDetailResponse{
		NotificationItem: dto.NewNotificationItem(notif),
		UserID:           notif.UserID,
		OrderUUID:        orderUUID,
	}, nil
}

// SetStatus moves one of the caller's notifications to the given status.
func (uc *NotificationUseCase) SetStatus(sess entity.Session, id int64, status string) (*dto.NotificationItem, error) {
	switch status {
	case entity.StatusNew, entity.StatusUnread, entity.StatusRead:
	default:
		return nil, domain.ErrValidation
	}
	notif, err := uc.notifRepo.GetForUser(id, sess.UserID)
	if err != nil {
		return nil, err
	}
	if notif == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.notifRepo.UpdateStatus(notif.ID, status); err != nil {
		return nil, err
	}
	notif.Status = status
	item := dto.NewNotificationItem(notif)
	return &item, nil
}

// MarkAllSeen moves every nieuw notification of the caller to ongelezen,
// clearing the "new" badge without marking anything as read.
func (uc *NotificationUseCase) MarkAllSeen(sess entity.Session) error {
	return uc.notifRepo.BulkStatus(sess.UserID, entity.StatusNew, entity.StatusUnread)
}

// CreatePaymentReminder stores a Betalingsherinnering for the first
// buyer account of the target company, signed with the supplier's name.
func (uc *NotificationUseCase) CreatePaymentReminder(sess entity.Session, in dto.CreateNotificationRequest) (*dto.NotificationItem, error) {
	if sess.Role != entity.RoleSupplier {
		return nil, domain.ErrForbidden
	}
	supplier, err := uc.companyRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	recipient, err := uc.userRepo.FirstBuyerByCompany(in.BuyerID)
	if err != nil {
		return nil, err
	}
	if recipient == 0 {
		return nil, domain.ErrNotFound
	}
	notif := &entity.Notification{
		Date:    time.Now(),
		Kind:    entity.KindPaymentReminder,
		Status:  entity.StatusNew,
		Text:    entity.NotificationText(entity.KindPaymentReminder, supplier.Name, in.OrderID),
		OrderID: in.OrderID,
		UserID:  recipient,
		Avatar:  supplier.Name,
	}
	if err := uc.notifRepo.Create(notif); err != nil {
		return nil, err
	}
	uc.notifier.NotifyUser(recipient, notif.Text)
	item := dto.NewNotificationItem(notif)
	return &item, nil
}

// NotifyPaymentReceived fans a betaling-ontvangen event out to every
// user of the supplying company.
func (uc *NotificationUseCase) NotifyPaymentReceived(order *entity.Order) error {
	buyer, err := uc.companyRepo.GetByID(order.BuyerID)
	if err != nil {
		return err
	}
	buyerName := ""
	if buyer != nil {
		buyerName = buyer.Name
	}
	recipients, err := uc.userRepo.SuppliersByCompany(order.SupplierID)
	if err != nil {
		return err
	}
	text := entity.NotificationText(entity.KindPaymentReceived, buyerName, order.ID)
	for _, recipient := range recipients {
		notif := &entity.Notification{
			Date:    time.Now(),
			Kind:    entity.KindPaymentReceived,
			Status:  entity.StatusNew,
			Text:    text,
			OrderID: order.ID,
			UserID:  recipient.ID,
			Avatar:  buyerName,
		}
		if err := uc.notifRepo.Create(notif); err != nil {
			return err
		}
		uc.notifier.NotifyUser(recipient.ID, text)
	}
	return nil
}

// LatestReminderForOrder resolves the order by its public identifier and
// returns the payment reminder stored for it. It serves an
// unauthenticated route; a missing order and a missing reminder are both
// NotFound.
func (uc *NotificationUseCase) LatestReminderForOrder(orderUUID string) (*dto.NotificationItem, error) {
	order, err := uc.orderRepo.FindByUUID(strings.ToLower(orderUUID))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	notif, err := uc.notifRepo.FirstReminderByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	if notif == nil {
		return nil, domain.ErrNotFound
	}
	item := dto.NewNotificationItem(notif)
	return &item, nil
}
