// Package repository is the gorm/postgres implementation of
// market.Store. Driver errors are mapped to the market sentinels at
// this boundary so the layers above never see a *pgconn.PgError.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gamebay/internal/market"
	"gamebay/internal/models"
)

type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

func (s *Store) CreateAccount(ctx context.Context, a *models.Account) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "email") {
				return market.ErrEmailTaken
			}
			return market.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *Store) AccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var a models.Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, market.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateListing(ctx context.Context, l *models.Listing) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *Store) ActiveListings(ctx context.Context) ([]models.Listing, error) {
	var items []models.Listing
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *Store) ListingsBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error) {
	var items []models.Listing
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *Store) ListingByID(ctx context.Context, id uint) (*models.Listing, error) {
	var l models.Listing
	err := s.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, market.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// SetListingStatus is a compare-and-set on the status column, so two
// buyers racing on the same listing cannot both move it to pending.
func (s *Store) SetListingStatus(ctx context.Context, id uint, from, to models.ListingStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		s.logger.Debug("listing status transition refused",
			"listing_id", id, "from", from, "to", to)
		return market.ErrNotAvailable
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
