package models

// ListingStatus — listing lifecycle
type ListingStatus string

const (
	StatusActive  ListingStatus = "active"
	StatusPending ListingStatus = "pending"
	StatusSold    ListingStatus = "sold"
)

// Listing — listings table
type Listing struct {
	Base
	SellerID    uint          `gorm:"index;not null"`
	Title       string        `gorm:"not null"`
	Description string        `gorm:"type:text"`
	PriceCents  int64         `gorm:"not null"`
	Game        string        `gorm:"not null"`
	ImagePath   string        // relative path, e.g. "/uploads/sword.png"
	Status      ListingStatus `gorm:"type:varchar(16);not null;default:'active'"`
}
