package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sale.go -destination=mocks/sale_mock.go -package=mocks

const (
	salesTable = "sales"

	// insertChunkSize mantém cada INSERT abaixo do limite de parâmetros do postgres
	insertChunkSize = 1000
)

var saleColumns = []string{"id", "batch_id", "date", "amount", "category", "customer_id"}

type SaleRepository interface {
	InsertBatch(ctx context.Context, batchID string, records []domain.SaleRecord) (int, error)
	DailyRevenue(ctx context.Context, start, end domain.Date) ([]domain.DailyRevenuePoint, error)
	SumByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
	SumByCustomer(ctx context.Context) ([]domain.CustomerTotal, error)
	Search(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, int, error)
	Export(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// storageError marca o erro como falha de armazenamento, preservando a causa
func storageError(op string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("%s: %w: %w (código: %s)", op, domain.ErrStorage, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// InsertBatch grava todos os registros em uma única transação; nada é gravado se algum INSERT falhar
func (r *saleRepository) InsertBatch(ctx context.Context, batchID string, records []domain.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertChunkSize {
			end := min(start+insertChunkSize, len(records))

			query, args, err := buildInsertQuery(batchID, records[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, storageError("erro ao inserir vendas", err)
	}

	return inserted, nil
}

func buildInsertQuery(batchID string, records []domain.SaleRecord) squirrel.InsertBuilder {
	builder := squirrel.
		Insert(salesTable).
		Columns("batch_id", "date", "amount", "category", "customer_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			batchID,
			record.Date.String(),
			record.Amount,
			record.Category,
			record.CustomerID,
		)
	}

	return builder
}

// DailyRevenue soma as vendas por dia no intervalo fechado [start, end]; dias sem vendas não aparecem
func (r *saleRepository) DailyRevenue(ctx context.Context, start, end domain.Date) ([]domain.DailyRevenuePoint, error) {
	query, args, err := squirrel.
		Select("date", "SUM(amount) AS revenue").
		From(salesTable).
		Where(squirrel.GtOrEq{"date": start.String()}).
		Where(squirrel.LtOrEq{"date": end.String()}).
		GroupBy("date").
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("erro ao consultar receita diária", err)
	}
	defer rows.Close()

	points := make([]domain.DailyRevenuePoint, 0)
	for rows.Next() {
		var (
			date    time.Time
			revenue decimal.Decimal
		)
		if err := rows.Scan(&date, &revenue); err != nil {
			return nil, storageError("erro ao processar resultado", err)
		}
		points = append(points, domain.DailyRevenuePoint{Date: domain.DateOf(date), Revenue: revenue})
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("erro durante iteração", err)
	}

	return points, nil
}

func (r *saleRepository) SumByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	query, args, err := squirrel.
		Select("category", "SUM(amount) AS total").
		From(salesTable).
		GroupBy("category").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("erro ao consultar totais por categoria", err)
	}
	defer rows.Close()

	totals := make([]domain.CategoryTotal, 0)
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Total); err != nil {
			return nil, storageError("erro ao processar resultado", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("erro durante iteração", err)
	}

	return totals, nil
}

func (r *saleRepository) SumByCustomer(ctx context.Context) ([]domain.CustomerTotal, error) {
	query, args, err := squirrel.
		Select("customer_id", "SUM(amount) AS total_spent", "COUNT(id) AS transaction_count").
		From(salesTable).
		GroupBy("customer_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("erro ao consultar totais por cliente", err)
	}
	defer rows.Close()

	totals := make([]domain.CustomerTotal, 0)
	for rows.Next() {
		var total domain.CustomerTotal
		if err := rows.Scan(&total.CustomerID, &total.TotalSpent, &total.TransactionCount); err != nil {
			return nil, storageError("erro ao processar resultado", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("erro durante iteração", err)
	}

	return totals, nil
}

// Search retorna uma página de vendas e o total de registros que atendem aos filtros
func (r *saleRepository) Search(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, int, error) {
	countQuery, countArgs, err := buildCountQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, storageError("erro ao contar vendas", err)
	}

	query, args, err := buildSearchQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	records, err := r.querySales(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Export retorna todas as vendas que atendem aos filtros, sem paginação
func (r *saleRepository) Export(ctx context.Context, filters domain.SaleFilters) ([]domain.SaleRecord, error) {
	filters.Limit = 0
	filters.Offset = 0

	query, args, err := buildSearchQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, query, args)
}

func (r *saleRepository) querySales(ctx context.Context, query string, args []any) ([]domain.SaleRecord, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("erro ao consultar vendas", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			record domain.SaleRecord
			date   time.Time
		)
		if err := rows.Scan(
			&record.ID,
			&record.BatchID,
			&date,
			&record.Amount,
			&record.Category,
			&record.CustomerID,
		); err != nil {
			return nil, storageError("erro ao processar resultado", err)
		}
		record.Date = domain.DateOf(date)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("erro durante iteração", err)
	}

	return records, nil
}

func buildSearchQuery(filters domain.SaleFilters) squirrel.SelectBuilder {
	builder := applySaleFilters(squirrel.Select(saleColumns...).From(salesTable), filters).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Limit > 0 {
		builder = builder.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		builder = builder.Offset(filters.Offset)
	}

	return builder
}

func buildCountQuery(filters domain.SaleFilters) squirrel.SelectBuilder {
	return applySaleFilters(squirrel.Select("COUNT(*)").From(salesTable), filters).
		PlaceholderFormat(squirrel.Dollar)
}

func applySaleFilters(builder squirrel.SelectBuilder, filters domain.SaleFilters) squirrel.SelectBuilder {
	if filters.Category != "" {
		if filters.CategoryContains {
			builder = builder.Where(squirrel.ILike{"category": "%" + filters.Category + "%"})
		} else {
			builder = builder.Where(squirrel.Eq{"category": filters.Category})
		}
	}

	if filters.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filters.CustomerID})
	}

	if filters.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": filters.Date.String()})
	}

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filters.StartDate.String()})
	}

	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": filters.EndDate.String()})
	}

	if filters.MinAmount != nil {
		builder = builder.Where(squirrel.GtOrEq{"amount": *filters.MinAmount})
	}

	if filters.MaxAmount != nil {
		builder = builder.Where(squirrel.LtOrEq{"amount": *filters.MaxAmount})
	}

	return builder
}
