package services

//go:generate mockgen -source=currency.go -destination=currency_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/currency-watchlist/internal/apperrors"
	"github.com/sbilibin2017/currency-watchlist/internal/logger"
	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// CurrencyReader defines read operations on tracked currencies.
type CurrencyReader interface {
	List(ctx context.Context) ([]models.Currency, error)            // Returns all tracked currencies
	Get(ctx context.Context, code string) (*models.Currency, error) // Returns a currency or nil if absent
}

// CurrencyWriter defines write operations on tracked currencies.
type CurrencyWriter interface {
	Insert(ctx context.Context, code, name string) (*models.Currency, error)                                  // Fails with ErrAlreadyExists
	UpdateRate(ctx context.Context, code string, rate float64, updatedAt time.Time) (*models.Currency, error) // Fails with ErrNotFound
	Delete(ctx context.Context, code string) error                                                            // Fails with ErrNotFound
}

// AllowList resolves currency codes that may be tracked.
type AllowList interface {
	Lookup(code string) (string, bool)
	List() []models.AllowedCurrency
}

// WatchlistService validates watchlist requests and applies them to the store.
type WatchlistService struct {
	allowed  AllowList
	reader   CurrencyReader
	writer   CurrencyWriter
	validate *validator.Validate
	now      func() time.Time
}

// NewWatchlistService creates a new WatchlistService instance.
func NewWatchlistService(allowed AllowList, reader CurrencyReader, writer CurrencyWriter) *WatchlistService {
	return &WatchlistService{
		allowed:  allowed,
		reader:   reader,
		writer:   writer,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (svc *WatchlistService) validateCode(code string) error {
	if err := svc.validate.Var(code, "len=3"); err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, "Code must be a 3-character string")
	}
	return nil
}

func (svc *WatchlistService) validateRate(rate *float64) error {
	if rate == nil {
		return apperrors.New(apperrors.ErrInvalidInput, "Field 'rate' is required and cannot be null")
	}
	if err := svc.validate.Var(*rate, "gt=0"); err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, "Rate must be a positive number")
	}
	return nil
}

// AddCurrency starts tracking an allowed currency without a rate.
func (svc *WatchlistService) AddCurrency(ctx context.Context, code string) (*models.Currency, error) {
	if err := svc.validateCode(code); err != nil {
		return nil, err
	}

	name, ok := svc.allowed.Lookup(code)
	if !ok {
		logger.Log.Infow("currency not in allow-list", "code", code)
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Invalid currency code. Use one of the allowed codes.")
	}

	currency, err := svc.writer.Insert(ctx, code, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.New(apperrors.ErrAlreadyExists, "Currency %s already exists", code)
		}
		logger.Log.Errorw("failed to add currency", "code", code, "err", err)
		return nil, err
	}

	return currency, nil
}

// ListCurrencies returns all tracked currencies.
func (svc *WatchlistService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list currencies", "err", err)
		return nil, err
	}
	return currencies, nil
}

// GetCurrency returns a single tracked currency.
func (svc *WatchlistService) GetCurrency(ctx context.Context, code string) (*models.Currency, error) {
	if err := svc.validateCode(code); err != nil {
		return nil, err
	}

	currency, err := svc.reader.Get(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to get currency", "code", code, "err", err)
		return nil, err
	}
	if currency == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Currency %s not found", code)
	}
	return currency, nil
}

// SetRate updates the rate of a tracked currency and stamps it with the
// current UTC time. The rate is validated before the store is touched.
func (svc *WatchlistService) SetRate(ctx context.Context, code string, rate *float64) (*models.Currency, error) {
	if err := svc.validateCode(code); err != nil {
		return nil, err
	}
	if err := svc.validateRate(rate); err != nil {
		return nil, err
	}

	currency, err := svc.writer.UpdateRate(ctx, code, *rate, svc.now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "Currency %s not found", code)
		}
		logger.Log.Errorw("failed to set rate", "code", code, "rate", *rate, "err", err)
		return nil, err
	}

	return currency, nil
}

// RemoveCurrency stops tracking a currency.
func (svc *WatchlistService) RemoveCurrency(ctx context.Context, code string) error {
	if err := svc.validateCode(code); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.ErrNotFound, "Currency %s not found", code)
		}
		logger.Log.Errorw("failed to remove currency", "code", code, "err", err)
		return err
	}

	return nil
}

// ListAllowedCurrencies returns the allow-list in declaration order.
func (svc *WatchlistService) ListAllowedCurrencies() []models.AllowedCurrency {
	return svc.allowed.List()
}
