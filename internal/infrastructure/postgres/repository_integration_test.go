package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
	"github.com/bvanacker/bestelportaal-api/internal/infrastructure/postgres"
)

// startPostgres provides a Postgres with the schema applied and a small
// fixture set loaded. DATABASE_URL points the suite at an existing
// server; otherwise a disposable container is booted, and the test is
// skipped when no Docker daemon is around to boot it.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("bestelportaal"),
			tcpostgres.WithUsername("portaal"),
			tcpostgres.WithPassword("portaal"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			t.Skipf("cannot start Postgres container (set DATABASE_URL to use an existing server): %v", err)
		}
		t.Cleanup(func() { _ = container.Terminate(ctx) })

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.ApplySchema(ctx, pool))
	seedFixtures(t, ctx, pool)
	return pool
}

func seedFixtures(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	t.Helper()
	// A reused server (DATABASE_URL) keeps its tables between tests.
	_, err := pool.Exec(ctx, `
		TRUNCATE companies, users, buyer_memberships, supplier_memberships,
			products, orders, order_lines, payments, notifications,
			company_update_requests RESTART IDENTITY CASCADE;
		INSERT INTO companies (id, uuid, name, sector, email) VALUES
			(10, 'c0000001-0000-0000-0000-000000000010', 'TechHub Belgium', 'IT', 'contact@techhub.be'),
			(20, 'c0000002-0000-0000-0000-000000000020', 'GourmetBites', 'FOOD', 'info@gourmetbites.be'),
			(30, 'c0000003-0000-0000-0000-000000000030', 'EduBright', 'EDUCATION', 'hello@edubright.be');
		INSERT INTO users (id, username, email, role, salt, password_hash) VALUES
			(1, 'klant1_techhub', 'klant1@techhub.be', 'Klant', 's', 'h'),
			(2, 'leverancier1_gourmet', 'leverancier1@gourmetbites.be', 'Leverancier', 's', 'h');
		INSERT INTO buyer_memberships (user_id, company_id) VALUES (1, 10);
		INSERT INTO supplier_memberships (user_id, company_id) VALUES (2, 20);
		INSERT INTO orders (id, uuid, amount, order_date, order_status, payment_status, buyer_id, supplier_id) VALUES
			(1, 'aa11bb22-0000-0000-0000-000000000001', 999.95, '2024-03-01T12:00:00Z', 0, 0, 10, 20),
			(2, 'cc33dd44-0000-0000-0000-000000000002', 10.00, '2024-04-01T12:00:00Z', 5, 2, 10, 30),
			(3, 'ee55ff66-0000-0000-0000-000000000003', 55.50, '2024-05-01T12:00:00Z', 2, 1, 30, 20);
		SELECT setval('orders_id_seq', 100);
		SELECT setval('companies_id_seq', 100);
		SELECT setval('users_id_seq', 100);
	`)
	require.NoError(t, err)
}

func buyerScope() repository.OrderScope {
	return repository.OrderScope{Role: entity.RoleBuyer, CompanyID: 10}
}

func TestOrderRepository_ListScoping(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewOrderRepository(pool)

	buyerOrders, err := repo.List(repository.OrderFilter{Scope: buyerScope(), PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, buyerOrders, 2)

	supplierOrders, err := repo.List(repository.OrderFilter{
		Scope:    repository.OrderScope{Role: entity.RoleSupplier, CompanyID: 20},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, supplierOrders, 2)

	adminOrders, err := repo.List(repository.OrderFilter{
		Scope:    repository.OrderScope{Role: entity.RoleAdmin},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, adminOrders, 3)
}

func TestOrderRepository_SearchTerm(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewOrderRepository(pool)

	// A status label matches on status, a number on the exact amount and
	// any term always tries the identifier.
	byStatus, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), Search: "voltooid", PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, entity.OrderCompleted, byStatus[0].OrderStatus)

	byAmount, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), Search: "999.95", PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, byAmount, 1)
	assert.True(t, byAmount[0].Amount.Equal(decimal.RequireFromString("999.95")))

	byUUID, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), Search: "aa11", PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, byUUID, 1)

	nothing, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), Search: "zzzz", PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, nothing)
}

func TestOrderRepository_SortWhitelist(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewOrderRepository(pool)

	asc, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), SortField: "bedrag", SortAsc: true, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.True(t, asc[0].Amount.LessThan(asc[1].Amount))

	// An unknown sort field falls back to newest first instead of failing.
	fallback, err := repo.List(repository.OrderFilter{
		Scope: buyerScope(), SortField: "kleur; DROP TABLE orders", PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, fallback, 2)
	assert.True(t, fallback[0].OrderDate.After(fallback[1].OrderDate))
}

func TestOrderRepository_FindScoped(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewOrderRepository(pool)

	found, err := repo.FindScoped("aa11", buyerScope())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)

	// Order 3 belongs to another buyer company.
	hidden, err := repo.FindScoped("ee55", buyerScope())
	require.NoError(t, err)
	assert.Nil(t, hidden)

	missing, err := repo.FindScoped("00000000", buyerScope())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepository_DateRangeAndPagination(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewOrderRepository(pool)

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	filter := repository.OrderFilter{Scope: buyerScope(), From: &from, PageSize: 10}
	late, err := repo.List(filter)
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, int64(2), late[0].ID)

	paged, err := repo.List(repository.OrderFilter{Scope: buyerScope(), Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	total, err := repo.Count(repository.OrderFilter{Scope: buyerScope()})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestNotificationRepository_ReadLifecycle(t *testing.T) {
	pool := startPostgres(t)
	repo := postgres.NewNotificationRepository(pool)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&entity.Notification{
			Kind:    entity.KindPaymentReminder,
			Date:    time.Date(2024, 5, 1+i, 9, 0, 0, 0, time.UTC),
			Text:    "testnotificatie",
			Status:  entity.StatusNew,
			UserID:  1,
			OrderID: 1,
		}))
	}

	recent, err := repo.Recent(1, []string{entity.StatusNew, entity.StatusUnread}, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	require.NoError(t, repo.BulkStatus(1, entity.StatusNew, entity.StatusUnread))
	unread, err := repo.Recent(1, []string{entity.StatusNew}, 5)
	require.NoError(t, err)
	assert.Empty(t, unread)

	still, err := repo.Recent(1, []string{entity.StatusUnread}, 5)
	require.NoError(t, err)
	assert.Len(t, still, 3)

	n, err := repo.GetForUser(still[0].ID, 1)
	require.NoError(t, err)
	require.NotNil(t, n)
	require.NoError(t, repo.UpdateStatus(n.ID, entity.StatusRead))

	reread, err := repo.GetForUser(n.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRead, reread.Status)

	// A different user never sees it.
	other, err := repo.GetForUser(n.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestUpdateRequestTxRunner_ReplacePending(t *testing.T) {
	pool := startPostgres(t)
	reqRepo := postgres.NewUpdateRequestRepository(pool)
	runner := postgres.NewTxRunner(pool)
	ctx := context.Background()

	err := runner.RunUpdateRequest(ctx, func(r repository.UpdateRequestRepository) error {
		return r.Create(&entity.CompanyUpdateRequest{CompanyID: 10, Name: "Eerste", Sector: "IT", Email: "a@b.be"})
	})
	require.NoError(t, err)

	err = runner.RunUpdateRequest(ctx, func(r repository.UpdateRequestRepository) error {
		if err := r.DeleteByCompany(10); err != nil {
			return err
		}
		return r.Create(&entity.CompanyUpdateRequest{CompanyID: 10, Name: "Tweede", Sector: "IT", Email: "a@b.be"})
	})
	require.NoError(t, err)

	pending, err := reqRepo.GetByCompany(10)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Tweede", pending.Name)

	// A failing callback rolls everything back.
	err = runner.RunUpdateRequest(ctx, func(r repository.UpdateRequestRepository) error {
		if err := r.DeleteByCompany(10); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	kept, err := reqRepo.GetByCompany(10)
	require.NoError(t, err)
	require.NotNil(t, kept, "rollback must restore the pending request")
	assert.Equal(t, "Tweede", kept.Name)
}
