package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL tüm tabloları idempotent kurar. movements tablosu append-only'dir:
// id BIGSERIAL defter içi toplam sıralamayı verir, UPDATE/DELETE yapılmaz.
// Asset üzerindeki status/location_id/party_id defterden türetilmiş indekstir.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id                TEXT PRIMARY KEY,
	sku               TEXT NOT NULL UNIQUE,
	name              TEXT NOT NULL,
	unit              TEXT NOT NULL,
	category          TEXT NOT NULL CHECK (category IN ('SARF', 'DEMIRBAS')),
	reorder_threshold NUMERIC NOT NULL DEFAULT 0,
	active            BOOLEAN NOT NULL DEFAULT TRUE,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS locations (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	kind       TEXT NOT NULL CHECK (kind IN ('DEPO', 'BOLUM')),
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS parties (
	id          TEXT PRIMARY KEY,
	full_name   TEXT NOT NULL,
	location_id TEXT REFERENCES locations(id),
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS assets (
	id          TEXT PRIMARY KEY,
	product_id  TEXT NOT NULL REFERENCES products(id),
	code        TEXT NOT NULL UNIQUE,
	serial_no   TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL CHECK (status IN ('IN_STOCK', 'ASSIGNED', 'FAULTY', 'SCRAPPED')),
	location_id TEXT REFERENCES locations(id),
	party_id    TEXT REFERENCES parties(id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS movements (
	id               BIGSERIAL PRIMARY KEY,
	type             TEXT NOT NULL CHECK (type IN ('RECEIPT', 'ISSUE', 'TRANSFER_OUT', 'TRANSFER_IN', 'ASSIGN', 'RETURN')),
	product_id       TEXT NOT NULL REFERENCES products(id),
	asset_id         TEXT REFERENCES assets(id),
	quantity         NUMERIC NOT NULL,
	from_location_id TEXT REFERENCES locations(id),
	to_location_id   TEXT REFERENCES locations(id),
	party_id         TEXT REFERENCES parties(id),
	condition        TEXT CHECK (condition IN ('INTACT', 'FAULTY', 'SCRAPPED')),
	note             TEXT NOT NULL DEFAULT '',
	created_by       TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id, id);
CREATE INDEX IF NOT EXISTS idx_movements_asset ON movements (asset_id, id DESC) WHERE asset_id IS NOT NULL;
CREATE INDEX IF NOT EXISTS idx_assets_status ON assets (status);
`

// EnsureSchema tabloları ve indeksleri kurar; tekrar çalıştırmak güvenlidir.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("şema kurulamadı: %w", err)
	}
	return nil
}
