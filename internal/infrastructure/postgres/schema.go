package postgres

import "context"

// Schema is the full DDL of the portal. Applied by cmd/seed and by the
// integration tests; production databases are expected to be migrated out
// of band.
const Schema = `
CREATE TABLE IF NOT EXISTS companies (
	id           BIGSERIAL PRIMARY KEY,
	uuid         TEXT NOT NULL UNIQUE,
	name         TEXT NOT NULL,
	sector       TEXT NOT NULL,
	email        TEXT NOT NULL,
	phone        TEXT NOT NULL DEFAULT '',
	website      TEXT NOT NULL DEFAULT '',
	vat_number   TEXT,
	active       BOOLEAN NOT NULL DEFAULT TRUE,
	street       TEXT NOT NULL DEFAULT '',
	number       INTEGER NOT NULL DEFAULT 0,
	box          TEXT NOT NULL DEFAULT '',
	postal_code  INTEGER NOT NULL DEFAULT 0,
	city         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
	id                BIGSERIAL PRIMARY KEY,
	username          TEXT NOT NULL UNIQUE,
	email             TEXT NOT NULL UNIQUE,
	role              TEXT NOT NULL,
	salt              TEXT NOT NULL,
	password_hash     TEXT NOT NULL,
	password_changed  BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS buyer_memberships (
	user_id     BIGINT PRIMARY KEY REFERENCES users(id),
	company_id  BIGINT NOT NULL REFERENCES companies(id)
);

CREATE TABLE IF NOT EXISTS supplier_memberships (
	user_id     BIGINT PRIMARY KEY REFERENCES users(id),
	company_id  BIGINT NOT NULL REFERENCES companies(id)
);

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	stock       INTEGER NOT NULL DEFAULT 0,
	unit_price  NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id              BIGSERIAL PRIMARY KEY,
	uuid            TEXT NOT NULL UNIQUE,
	amount          NUMERIC(12,2) NOT NULL,
	order_date      TIMESTAMPTZ NOT NULL,
	order_status    INTEGER NOT NULL DEFAULT 0,
	payment_status  INTEGER NOT NULL DEFAULT 0,
	street          TEXT NOT NULL DEFAULT '',
	number          INTEGER NOT NULL DEFAULT 0,
	postal_code     INTEGER NOT NULL DEFAULT 0,
	city            TEXT NOT NULL DEFAULT '',
	buyer_id        BIGINT NOT NULL REFERENCES companies(id),
	supplier_id     BIGINT NOT NULL REFERENCES companies(id),
	CHECK (buyer_id <> supplier_id)
);

CREATE TABLE IF NOT EXISTS order_lines (
	id          BIGSERIAL PRIMARY KEY,
	order_id    BIGINT NOT NULL REFERENCES orders(id),
	product_id  BIGINT NOT NULL REFERENCES products(id),
	quantity    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
	id            BIGSERIAL PRIMARY KEY,
	payment_date  TIMESTAMPTZ NOT NULL,
	amount_paid   NUMERIC(12,2) NOT NULL,
	approved      BOOLEAN NOT NULL DEFAULT FALSE,
	processed     BOOLEAN NOT NULL DEFAULT FALSE,
	amount_owed   NUMERIC(12,2) NOT NULL,
	buyer_id      BIGINT NOT NULL REFERENCES companies(id),
	order_id      BIGINT NOT NULL REFERENCES orders(id)
);

CREATE TABLE IF NOT EXISTS notifications (
	id        BIGSERIAL PRIMARY KEY,
	kind      TEXT NOT NULL,
	date      TIMESTAMPTZ NOT NULL,
	text      TEXT NOT NULL,
	status    TEXT NOT NULL DEFAULT 'nieuw',
	user_id   BIGINT NOT NULL REFERENCES users(id),
	order_id  BIGINT NOT NULL REFERENCES orders(id),
	avatar    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS company_update_requests (
	id           BIGSERIAL PRIMARY KEY,
	company_id   BIGINT NOT NULL REFERENCES companies(id),
	name         TEXT NOT NULL,
	sector       TEXT NOT NULL,
	email        TEXT NOT NULL,
	phone        TEXT NOT NULL DEFAULT '',
	website      TEXT NOT NULL DEFAULT '',
	vat_number   TEXT,
	street       TEXT NOT NULL DEFAULT '',
	number       INTEGER NOT NULL DEFAULT 0,
	box          TEXT NOT NULL DEFAULT '',
	postal_code  INTEGER NOT NULL DEFAULT 0,
	city         TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id);
CREATE INDEX IF NOT EXISTS idx_orders_supplier ON orders(supplier_id);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, status);
`

// ApplySchema runs the DDL against the given querier.
func ApplySchema(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, Schema)
	return err
}
