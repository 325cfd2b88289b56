package postgres

import (
	"context"
	"fmt"
)

// schemaSQL tabla de ocorrências. seq conserva el orden de inserción;
// claimed_value se desnormaliza fuera de details para poder agregarlo en SQL.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS occurrences (
	seq                 BIGSERIAL,
	id                  TEXT PRIMARY KEY,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL,
	product_code        TEXT NOT NULL DEFAULT '',
	product_name        TEXT NOT NULL DEFAULT '',
	store               TEXT NOT NULL,
	reported_by         TEXT NOT NULL DEFAULT '',
	reported_by_name    TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL CHECK (status IN ('OPEN','IN_ANALYSIS','APPROVED','REJECTED')),
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL,
	cd_comments         TEXT,
	cd_decision_by      TEXT,
	cd_decision_by_name TEXT,
	ai_analysis         TEXT,
	claimed_value       NUMERIC(14,2),
	details             JSONB NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS idx_occurrences_store_status ON occurrences (store, status);
`

// EnsureSchema crea la tabla si no existe. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema occurrences: %w", err)
	}
	return nil
}
