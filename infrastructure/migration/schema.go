package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// Statement é um passo idempotente do esquema
type Statement struct {
	Name string
	SQL  string
}

// Statements cria as tabelas usadas pela API caso ainda não existam
var Statements = []Statement{
	{
		Name: "create_sales",
		SQL: `CREATE TABLE IF NOT EXISTS sales (
			id          BIGSERIAL PRIMARY KEY,
			batch_id    VARCHAR(32) NOT NULL DEFAULT '',
			date        DATE NOT NULL,
			amount      NUMERIC(14, 2) NOT NULL CHECK (amount >= 0),
			category    VARCHAR(255) NOT NULL CHECK (category <> ''),
			customer_id BIGINT NOT NULL CHECK (customer_id > 0),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{Name: "idx_sales_date", SQL: `CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`},
	{Name: "idx_sales_category", SQL: `CREATE INDEX IF NOT EXISTS idx_sales_category ON sales (category)`},
	{Name: "idx_sales_batch", SQL: `CREATE INDEX IF NOT EXISTS idx_sales_batch ON sales (batch_id)`},
	{
		Name: "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			email         VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// Apply executa todos os passos do esquema em uma única transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	logger := log.ForContext(ctx)

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range Statements {
			if _, err := tx.ExecContext(ctx, stmt.SQL); err != nil {
				return fmt.Errorf("erro ao aplicar %s: %w", stmt.Name, err)
			}
			logger.Debugf("Migração %s aplicada", stmt.Name)
		}

		logger.Infof("Esquema verificado (%d passos)", len(Statements))
		return nil
	})
}
