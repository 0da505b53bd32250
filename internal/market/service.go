// Package market holds the marketplace application logic: accounts,
// listings and the purchase flow, independent of the HTTP layer.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"gamebay/internal/models"
	"gamebay/internal/payment"
)

// Store is what the service needs from persistence.
type Store interface {
	CreateAccount(ctx context.Context, a *models.Account) error
	AccountByUsername(ctx context.Context, username string) (*models.Account, error)

	CreateListing(ctx context.Context, l *models.Listing) error
	ActiveListings(ctx context.Context) ([]models.Listing, error)
	ListingsBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error)
	ListingByID(ctx context.Context, id uint) (*models.Listing, error)
	// SetListingStatus flips status only when the listing currently has
	// status from; returns ErrNotAvailable when it does not.
	SetListingStatus(ctx context.Context, id uint, from, to models.ListingStatus) error
}

// Gateway is the outbound payment provider.
type Gateway interface {
	CreatePayment(ctx context.Context, idempotenceKey string, req payment.CreateRequest) (*payment.Payment, error)
}

type Service struct {
	store   Store
	gateway Gateway
	baseURL string
	logger  *slog.Logger
}

func NewService(store Store, gateway Gateway, baseURL string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, gateway: gateway, baseURL: baseURL, logger: logger}
}

// Register creates an account with a bcrypt password hash. Username
// and email must both be unused.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: fill all fields", ErrInvalidInput)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}
	a := &models.Account{Username: username, Email: email, PasswordHash: hash}
	if err := s.store.CreateAccount(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("account registered", "account_id", a.ID, "username", a.Username)
	return a, nil
}

// Login verifies credentials. Unknown username and wrong password
// return the same ErrInvalidCredentials so callers cannot probe which
// usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Account, error) {
	a, err := s.store.AccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !models.CheckPassword(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// NewListing is the validated form input for CreateListing.
type NewListing struct {
	Title       string
	Description string
	Price       string
	Game        string
	ImagePath   string
}

// Validate checks the required fields and returns the parsed price in
// cents. Handlers call it before touching disk or the store so a bad
// form leaves no side effects behind.
func (in NewListing) Validate() (int64, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Game) == "" {
		return 0, fmt.Errorf("%w: fill title, description, price, game", ErrInvalidInput)
	}
	return ParsePrice(in.Price)
}

func (s *Service) CreateListing(ctx context.Context, sellerID uint, in NewListing) (*models.Listing, error) {
	priceCents, err := in.Validate()
	if err != nil {
		return nil, err
	}

	l := &models.Listing{
		SellerID:    sellerID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  priceCents,
		Game:        strings.TrimSpace(in.Game),
		ImagePath:   in.ImagePath,
		Status:      models.StatusActive,
	}
	if err := s.store.CreateListing(ctx, l); err != nil {
		return nil, err
	}
	s.logger.Info("listing created", "listing_id", l.ID, "seller_id", sellerID, "price_cents", priceCents)
	return l, nil
}

func (s *Service) ActiveListings(ctx context.Context) ([]models.Listing, error) {
	return s.store.ActiveListings(ctx)
}

func (s *Service) SellerListings(ctx context.Context, sellerID uint) ([]models.Listing, error) {
	return s.store.ListingsBySeller(ctx, sellerID)
}

// Purchase marks the listing pending and registers a payment with the
// provider, returning the hosted checkout URL to redirect the buyer
// to. Only an active listing can be bought, and only by someone other
// than its seller. If the provider call fails the listing is released
// back to active.
func (s *Service) Purchase(ctx context.Context, listingID, buyerID uint) (string, error) {
	l, err := s.store.ListingByID(ctx, listingID)
	if err != nil {
		return "", err
	}
	if l.SellerID == buyerID {
		return "", ErrOwnListing
	}

	if err := s.store.SetListingStatus(ctx, l.ID, models.StatusActive, models.StatusPending); err != nil {
		return "", err
	}

	req := payment.CreateRequest{
		Amount: payment.Amount{
			Value:    FormatCents(l.PriceCents),
			Currency: "RUB",
		},
		Confirmation: payment.Confirmation{
			Type:      "redirect",
			ReturnURL: s.baseURL + "/confirm_payment",
		},
		Capture:     true,
		Description: "Purchase: " + l.Title,
		Metadata:    map[string]string{"listing_id": fmt.Sprint(l.ID)},
	}
	p, err := s.gateway.CreatePayment(ctx, uuid.NewString(), req)
	if err != nil {
		// put the listing back on sale, otherwise it is stuck pending
		// with no purchase in progress
		if relErr := s.store.SetListingStatus(ctx, l.ID, models.StatusPending, models.StatusActive); relErr != nil {
			s.logger.Error("failed to release listing after payment error",
				"listing_id", l.ID, "error", relErr)
		}
		return "", fmt.Errorf("payment provider: %w", err)
	}

	s.logger.Info("purchase initiated",
		"listing_id", l.ID, "buyer_id", buyerID, "payment_id", p.ID)
	return p.Confirmation.ConfirmationURL, nil
}
