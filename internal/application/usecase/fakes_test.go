package usecase_test

import (
	"context"
	"strings"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// In-memory repository fakes for the use case tests.

type fakeOrderRepo struct {
	orders     []*entity.Order
	lastFilter repository.OrderFilter
	listErr    error
}

func (f *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) Count(filter repository.OrderFilter) (int, error) {
	return len(f.orders), nil
}

func (f *fakeOrderRepo) FindScoped(partialUUID string, scope repository.OrderScope) (*entity.Order, error) {
	for _, o := range f.orders {
		if !strings.Contains(o.UUID, partialUUID) {
			continue
		}
		switch scope.Role {
		case entity.RoleBuyer:
			if o.BuyerID != scope.CompanyID {
				continue
			}
		case entity.RoleSupplier:
			if o.SupplierID != scope.CompanyID {
				continue
			}
		}
		return o, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByUUID(partialUUID string) (*entity.Order, error) {
	return f.FindScoped(partialUUID, repository.OrderScope{})
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

type fakeNotifRepo struct {
	notifs     []*entity.Notification
	nextID     int64
	bulkCalls  [][2]string // from, to pairs per BulkStatus call
	bulkUser   int64
	statusSets map[int64]string
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{nextID: 1, statusSets: make(map[int64]string)}
}

func (f *fakeNotifRepo) Create(n *entity.Notification) error {
	n.ID = f.nextID
	f.nextID++
	f.notifs = append(f.notifs, n)
	return nil
}

func (f *fakeNotifRepo) List(filter repository.NotificationFilter, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifs {
		if n.UserID == filter.UserID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) Count(filter repository.NotificationFilter) (int, error) {
	out, _ := f.List(filter, 0, 0)
	return len(out), nil
}

func (f *fakeNotifRepo) Recent(userID int64, statuses []string, limit int) ([]*entity.Notification, error) {
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var out []*entity.Notification
	for _, n := range f.notifs {
		if n.UserID == userID && allowed[n.Status] && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) GetForUser(id, userID int64) (*entity.Notification, error) {
	for _, n := range f.notifs {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotifRepo) UpdateStatus(id int64, status string) error {
	f.statusSets[id] = status
	for _, n := range f.notifs {
		if n.ID == id {
			n.Status = status
		}
	}
	return nil
}

func (f *fakeNotifRepo) BulkStatus(userID int64, from, to string) error {
	f.bulkUser = userID
	f.bulkCalls = append(f.bulkCalls, [2]string{from, to})
	for _, n := range f.notifs {
		if n.UserID == userID && n.Status == from {
			n.Status = to
		}
	}
	return nil
}

func (f *fakeNotifRepo) FirstReminderByOrder(orderID int64) (*entity.Notification, error) {
	for _, n := range f.notifs {
		if n.OrderID == orderID && n.Kind == entity.KindPaymentReminder {
			return n, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users      map[int64]*entity.User
	companyOf  map[int64]int64 // user id -> company id
	firstBuyer map[int64]int64 // company id -> first buyer user id
	suppliers  map[int64][]*entity.User
	updated    *entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[int64]*entity.User),
		companyOf:  make(map[int64]int64),
		firstBuyer: make(map[int64]int64),
		suppliers:  make(map[int64][]*entity.User),
	}
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	f.updated = user
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) CompanyIDForUser(userID int64, role string) (int64, error) {
	return f.companyOf[userID], nil
}

func (f *fakeUserRepo) FirstBuyerByCompany(companyID int64) (int64, error) {
	return f.firstBuyer[companyID], nil
}

func (f *fakeUserRepo) SuppliersByCompany(companyID int64) ([]*entity.User, error) {
	return f.suppliers[companyID], nil
}

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	updated   *entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company)}
}

func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) Update(company *entity.Company) error {
	f.updated = company
	f.companies[company.ID] = company
	return nil
}

type fakeReqRepo struct {
	reqs    map[int64]*entity.CompanyUpdateRequest
	nextID  int64
	deletes []int64
}

func newFakeReqRepo() *fakeReqRepo {
	return &fakeReqRepo{reqs: make(map[int64]*entity.CompanyUpdateRequest), nextID: 1}
}

func (f *fakeReqRepo) Create(req *entity.CompanyUpdateRequest) error {
	req.ID = f.nextID
	f.nextID++
	f.reqs[req.CompanyID] = req
	return nil
}

func (f *fakeReqRepo) GetByCompany(companyID int64) (*entity.CompanyUpdateRequest, error) {
	return f.reqs[companyID], nil
}

func (f *fakeReqRepo) DeleteByCompany(companyID int64) error {
	f.deletes = append(f.deletes, companyID)
	delete(f.reqs, companyID)
	return nil
}

// fakeTxRunner hands the callback the same fake request repo; no real
// transaction semantics are simulated.
type fakeTxRunner struct {
	reqRepo *fakeReqRepo
	calls   int
}

func (f *fakeTxRunner) RunUpdateRequest(ctx context.Context, fn func(repository.UpdateRequestRepository) error) error {
	f.calls++
	return fn(f.reqRepo)
}

type fakePaymentRepo struct {
	created []*entity.Payment
}

func (f *fakePaymentRepo) Create(payment *entity.Payment) error {
	payment.ID = int64(len(f.created) + 1)
	f.created = append(f.created, payment)
	return nil
}

type fakeLineRepo struct {
	lines map[int64][]*repository.OrderLineWithProduct
}

func (f *fakeLineRepo) ListByOrder(orderID int64) ([]*repository.OrderLineWithProduct, error) {
	return f.lines[orderID], nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			out = append(out, p)
		}
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Count(search string) (int, error) {
	out, _ := f.List(search, len(f.products), 0)
	return len(out), nil
}

type fakeNotifier struct {
	sent []struct {
		UserID int64
		Text   string
	}
}

func (f *fakeNotifier) NotifyUser(userID int64, text string) {
	f.sent = append(f.sent, struct {
		UserID int64
		Text   string
	}{userID, text})
}
