package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/currency-watchlist/internal/apperrors"
	"github.com/sbilibin2017/currency-watchlist/internal/logger"
	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// TimeLayout is the text format of updated_at in the currencies table.
const TimeLayout = time.RFC3339Nano

const currencyColumns = "code, name, rate, updated_at"

// currencyRow mirrors a row of the currencies table.
type currencyRow struct {
	Code      string          `db:"code"`
	Name      string          `db:"name"`
	Rate      sql.NullFloat64 `db:"rate"`
	UpdatedAt sql.NullString  `db:"updated_at"`
}

func (r currencyRow) toModel() (models.Currency, error) {
	c := models.Currency{Code: r.Code, Name: r.Name}
	if r.Rate.Valid {
		rate := r.Rate.Float64
		c.Rate = &rate
	}
	if r.UpdatedAt.Valid {
		ts, err := time.Parse(TimeLayout, r.UpdatedAt.String)
		if err != nil {
			return models.Currency{}, fmt.Errorf("parse updated_at of %s: %w", r.Code, err)
		}
		ts = ts.UTC()
		c.UpdatedAt = &ts
	}
	return c, nil
}

// executor returns the request transaction if there is one, else the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// CurrencyReadRepository handles currency read operations
type CurrencyReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCurrencyReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CurrencyReadRepository {
	return &CurrencyReadRepository{db: db, txGetter: txGetter}
}

// List returns every tracked currency ordered by code. An empty table
// yields an empty slice.
func (r *CurrencyReadRepository) List(ctx context.Context) ([]models.Currency, error) {
	const query = `
		SELECT ` + currencyColumns + `
		FROM currencies
		ORDER BY code
	`

	var rows []currencyRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query)
	logQuery(query, nil, len(rows), err)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}

	currencies := make([]models.Currency, 0, len(rows))
	for _, row := range rows {
		c, err := row.toModel()
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, nil
}

// Get returns the currency with the given code, or nil if it is not tracked.
func (r *CurrencyReadRepository) Get(ctx context.Context, code string) (*models.Currency, error) {
	const query = `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE code = ?
	`

	var row currencyRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, code)
	logQuery(query, []any{code}, row, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get currency %s: %w", code, err)
	}

	c, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CurrencyWriteRepository handles currency write operations.
// Each method is a single statement, so existence and uniqueness are
// checked atomically by the database.
type CurrencyWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCurrencyWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CurrencyWriteRepository {
	return &CurrencyWriteRepository{db: db, txGetter: txGetter}
}

// Insert adds a currency without a rate. It returns apperrors.ErrAlreadyExists
// when the code is already tracked.
func (r *CurrencyWriteRepository) Insert(ctx context.Context, code, name string) (*models.Currency, error) {
	const query = `
		INSERT INTO currencies (code, name, rate, updated_at)
		VALUES (?, ?, NULL, NULL)
		ON CONFLICT (code) DO NOTHING
		RETURNING ` + currencyColumns

	args := []any{code, name}

	var row currencyRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(query, args, row, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert currency %s: %w", code, err)
	}

	c, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateRate sets rate and updatedAt of a tracked currency. It returns
// apperrors.ErrNotFound when the code is not tracked.
func (r *CurrencyWriteRepository) UpdateRate(ctx context.Context, code string, rate float64, updatedAt time.Time) (*models.Currency, error) {
	const query = `
		UPDATE currencies
		SET rate = ?, updated_at = ?
		WHERE code = ?
		RETURNING ` + currencyColumns

	args := []any{rate, updatedAt.UTC().Format(TimeLayout), code}

	var row currencyRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(query, args, row, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update rate of %s: %w", code, err)
	}

	c, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a tracked currency. It returns apperrors.ErrNotFound when
// the code is not tracked.
func (r *CurrencyWriteRepository) Delete(ctx context.Context, code string) error {
	const query = `
		DELETE FROM currencies
		WHERE code = ?
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, code)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{code}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete currency %s: %w", code, err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
