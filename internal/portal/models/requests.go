package models

import (
	"regexp"
	"strings"

	dErrors "janseva/pkg/domain-errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Normalize trims user-entered whitespace. Passwords are left untouched.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
}

// Validate checks the request and returns a CodeValidation error with
// per-field messages when anything is off.
func (r RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if r.Email == "" || !emailPattern.MatchString(r.Email) {
		fields["email"] = "invalid email"
	}
	if len(r.Username) < 3 {
		fields["username"] = "username must be at least 3 characters"
	}
	if r.FullName == "" {
		fields["full_name"] = "full name is required"
	}
	if len(r.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}

	if len(fields) > 0 {
		return dErrors.WithFields(dErrors.CodeValidation, "invalid registration", fields)
	}
	return nil
}

// LoginRequest is the credential payload for token acquisition.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FamilyProfileRequest is the one-time household submission. The server
// assigns the ID and creation time.
type FamilyProfileRequest struct {
	FamilyHeadName string         `json:"family_head_name"`
	Age            int            `json:"age"`
	Gender         string         `json:"gender"`
	CasteCategory  string         `json:"caste_category"`
	Occupation     string         `json:"occupation"`
	AnnualIncome   float64        `json:"annual_income"`
	EducationLevel string         `json:"education_level"`
	HasDisability  bool           `json:"disability"`
	Members        []FamilyMember `json:"family_members"`
}

// Normalize trims user-entered whitespace on the head and member names.
func (r *FamilyProfileRequest) Normalize() {
	r.FamilyHeadName = strings.TrimSpace(r.FamilyHeadName)
	r.Gender = strings.TrimSpace(r.Gender)
	r.CasteCategory = strings.TrimSpace(r.CasteCategory)
	r.Occupation = strings.TrimSpace(r.Occupation)
	r.EducationLevel = strings.TrimSpace(r.EducationLevel)
	for i := range r.Members {
		r.Members[i].Name = strings.TrimSpace(r.Members[i].Name)
		r.Members[i].Relationship = strings.TrimSpace(r.Members[i].Relationship)
	}
}

// Validate checks required fields and returns per-field messages on failure.
func (r FamilyProfileRequest) Validate() error {
	fields := make(map[string]string)

	if r.FamilyHeadName == "" {
		fields["family_head_name"] = "head of family name is required"
	}
	if r.Age <= 0 || r.Age > 120 {
		fields["age"] = "age must be between 1 and 120"
	}
	if r.Gender == "" {
		fields["gender"] = "gender is required"
	}
	if r.CasteCategory == "" {
		fields["caste_category"] = "caste category is required"
	}
	if r.Occupation == "" {
		fields["occupation"] = "occupation is required"
	}
	if r.AnnualIncome < 0 {
		fields["annual_income"] = "annual income cannot be negative"
	}
	if r.EducationLevel == "" {
		fields["education_level"] = "education level is required"
	}
	for _, m := range r.Members {
		if m.Name == "" {
			fields["family_members"] = "every family member needs a name"
			break
		}
		if m.Relationship == "" {
			fields["family_members"] = "every family member needs a relationship"
			break
		}
		if m.Age < 0 || m.Age > 120 {
			fields["family_members"] = "member age must be between 0 and 120"
			break
		}
	}

	if len(fields) > 0 {
		return dErrors.WithFields(dErrors.CodeValidation, "invalid family profile", fields)
	}
	return nil
}

// LoginResponse is the token grant returned by the portal.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SchemesResponse wraps the eligibility projection on the wire.
type SchemesResponse struct {
	Schemes []SchemeEligibility `json:"schemes"`
}

// NotificationsResponse wraps the notification list on the wire.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// UploadResponse acknowledges a stored document.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
