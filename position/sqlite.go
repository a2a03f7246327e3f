package position

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a persistent Source backed by a local SQLite file.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ledger schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Open(ctx context.Context, p Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO positions
		(id, market_index, size_scaled, strike_price, open_order_id, close_order_id, status, sub_account_id, opened_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.MarketIndex, p.SizeScaled, p.StrikePrice, p.OpenOrderID,
		p.CloseOrderID, string(p.Status), p.SubAccountID, p.OpenedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("open position %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, p Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE positions
		SET market_index = ?, size_scaled = ?, strike_price = ?, open_order_id = ?,
		    close_order_id = ?, status = ?, sub_account_id = ?, opened_at = ?, updated_at = ?
		WHERE id = ?`,
		p.MarketIndex, p.SizeScaled, p.StrikePrice, p.OpenOrderID,
		p.CloseOrderID, string(p.Status), p.SubAccountID, p.OpenedAt, p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update position %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update position %s: %w", p.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, id string) (Position, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, market_index, size_scaled, strike_price, open_order_id, close_order_id, status, sub_account_id, opened_at, updated_at
		FROM positions WHERE id = ?`, id)

	p, err := scanPosition(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Position{}, fmt.Errorf("get %s: %w", id, err)
	}
	return p, nil
}

func (s *SQLite) List(ctx context.Context) ([]Position, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, market_index, size_scaled, strike_price, open_order_id, close_order_id, status, sub_account_id, opened_at, updated_at
		FROM positions ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		p, err := scanPosition(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list positions: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	return out, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func scanPosition(scan func(...any) error) (Position, error) {
	var p Position
	var status string
	err := scan(&p.ID, &p.MarketIndex, &p.SizeScaled, &p.StrikePrice,
		&p.OpenOrderID, &p.CloseOrderID, &status, &p.SubAccountID,
		&p.OpenedAt, &p.UpdatedAt)
	p.Status = Status(status)
	return p, err
}
