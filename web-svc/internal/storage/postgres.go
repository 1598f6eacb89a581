package storage

import (
	"context"
	"database/sql"
	"fmt"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"
)

var _ service.ReceiptRepository = (*PostgresReceiptRepository)(nil)

type PostgresReceiptRepository struct {
	DB *sql.DB
}

func NewPostgresReceiptRepository(db *sql.DB) *PostgresReceiptRepository {
	return &PostgresReceiptRepository{DB: db}
}

func (r *PostgresReceiptRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_receipts (
			id SERIAL PRIMARY KEY,
			provisional_number TEXT NOT NULL,
			order_number TEXT NOT NULL,
			total NUMERIC(10, 2) NOT NULL DEFAULT 0,
			item_count INTEGER NOT NULL DEFAULT 0,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS order_receipts_submitted_at_idx ON order_receipts (submitted_at DESC)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresReceiptRepository) Record(ctx context.Context, receipt *domain.Receipt) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO order_receipts (provisional_number, order_number, total, item_count, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		receipt.ProvisionalNumber, receipt.OrderNumber, receipt.Total.String(), receipt.ItemCount, receipt.SubmittedAt,
	).Scan(&receipt.ID)
}

func (r *PostgresReceiptRepository) Recent(ctx context.Context, limit int) ([]domain.Receipt, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, provisional_number, order_number, total, item_count, submitted_at
		FROM order_receipts
		ORDER BY submitted_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	for rows.Next() {
		var receipt domain.Receipt
		var total string
		if err := rows.Scan(&receipt.ID, &receipt.ProvisionalNumber, &receipt.OrderNumber, &total, &receipt.ItemCount, &receipt.SubmittedAt); err != nil {
			continue
		}
		receipt.Total = domain.NewPrice(total)
		receipts = append(receipts, receipt)
	}
	return receipts, rows.Err()
}
