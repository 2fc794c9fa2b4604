// Package models holds the portal's domain records and request/response
// shapes. The server owns every record here; the client keeps read-only
// snapshots tied to the session lifetime.
package models

import "time"

// UserProfile is the authenticated account as the portal reports it.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// FamilyProfile is the household record. At most one exists per user and it
// is immutable once created; its absence is a valid state.
type FamilyProfile struct {
	ID             string         `json:"id"`
	FamilyHeadName string         `json:"family_head_name"`
	Age            int            `json:"age"`
	Gender         string         `json:"gender"`
	CasteCategory  string         `json:"caste_category"`
	Occupation     string         `json:"occupation"`
	AnnualIncome   float64        `json:"annual_income"`
	EducationLevel string         `json:"education_level"`
	HasDisability  bool           `json:"disability"`
	Members        []FamilyMember `json:"family_members"`
	CreatedAt      time.Time      `json:"created_at"`
}

// FamilyMember belongs exclusively to its FamilyProfile. Ordering is
// insertion order and matters for display only.
type FamilyMember struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Relationship  string `json:"relationship"`
	Education     string `json:"education,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	HasDisability bool   `json:"disability"`
}

// SchemeStatus is the portal's determination for one scheme.
type SchemeStatus string

const (
	StatusEligible    SchemeStatus = "Eligible"
	StatusNotEligible SchemeStatus = "Not Eligible"
	StatusApplied     SchemeStatus = "Applied"
	StatusApproved    SchemeStatus = "Approved"
)

// SchemeEligibility is one row of the derived eligibility projection. The
// whole set is replaced on every (re-)check, never patched.
type SchemeEligibility struct {
	SchemeName  string       `json:"scheme_name"`
	Status      SchemeStatus `json:"status"`
	AIReasoning string       `json:"ai_reasoning"`
}

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is append-only from the client's perspective; ordering is
// server-assigned (newest first) and preserved as received.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"is_read"`
}

// StoredDocument is the acknowledgement record for an uploaded document.
type StoredDocument struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
