// Package store holds the stub portal's records in memory.
package store

import (
	"time"

	"janseva/internal/portal/models"
)

// User is an account record. PasswordHash is a bcrypt hash; the plaintext is
// never stored.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Store is the portal's record store, keyed by user.
type Store interface {
	CreateUser(user User) error
	UserByUsername(username string) (User, error)
	UserByID(id string) (User, error)

	CreateFamily(userID string, family models.FamilyProfile) error
	FamilyByUser(userID string) (models.FamilyProfile, error)

	ReplaceSchemes(userID string, schemes []models.SchemeEligibility) error
	SchemesByUser(userID string) ([]models.SchemeEligibility, error)
	UpdateSchemeStatus(userID, schemeName string, status models.SchemeStatus) error

	AddNotification(userID string, n models.Notification) error
	NotificationsByUser(userID string) ([]models.Notification, error)
	MarkNotificationRead(userID, notificationID string) error

	AddDocument(userID string, doc models.StoredDocument) error
	DocumentsByUser(userID string) ([]models.StoredDocument, error)
}
