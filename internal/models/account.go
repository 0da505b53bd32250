package models

import "golang.org/x/crypto/bcrypt"

// Account — accounts table
type Account struct {
	Base
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	// never debited or credited anywhere; stored for future settlement
	BalanceCents int64 `gorm:"not null;default:0"`

	Listings []Listing `gorm:"foreignKey:SellerID"`
}

// HashPassword turns a plain password into a safe hash
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword verifies a password against its hash
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
