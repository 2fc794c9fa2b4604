// Package stub is a self-contained portal implementation used for local
// development and end-to-end client tests. It speaks the same wire contract
// as the real portal and keeps everything in memory.
package stub

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"janseva/internal/portal/models"
	"janseva/internal/stub/eligibility"
	"janseva/internal/stub/metrics"
	"janseva/internal/stub/store"
	"janseva/internal/stub/token"
	dErrors "janseva/pkg/domain-errors"
	"janseva/pkg/platform/httputil"
	"janseva/pkg/platform/sentinel"
)

const maxUploadBytes = 10 << 20

// Handler serves the portal API over an in-memory store.
type Handler struct {
	store   store.Store
	tokens  *token.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewHandler(st store.Store, tokens *token.Service, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{store: st, tokens: tokens, metrics: m, logger: logger}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password"))
		return
	}

	user := store.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.CreateUser(user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "username already exists"))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not create user"))
		return
	}

	welcome := models.Notification{
		ID:        uuid.NewString(),
		Title:     "Welcome to JanSeva",
		Message:   "Submit your family profile to discover the schemes you qualify for.",
		Type:      models.NotificationInfo,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.AddNotification(user.ID, welcome); err != nil {
		h.logger.Warn("could not add welcome notification", "error", err)
	}

	h.logger.Info("user registered", "username", user.Username)
	httputil.WriteJSON(w, http.StatusCreated, models.MessageResponse{Message: "registration successful"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// Unknown user and wrong password produce the same answer so usernames
	// cannot be probed.
	user, err := h.store.UserByUsername(req.Username)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))
		return
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))
		return
	}

	minted, err := h.tokens.Mint(user.ID)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not mint token"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.LoginResponse{AccessToken: minted, TokenType: "bearer"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.UserByID(userID(r))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

func (h *Handler) handleGetFamily(w http.ResponseWriter, r *http.Request) {
	family, err := h.store.FamilyByUser(userID(r))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "family profile not found"))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not load family profile"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, family)
}

func (h *Handler) handleCreateFamily(w http.ResponseWriter, r *http.Request) {
	var req models.FamilyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	family := models.FamilyProfile{
		ID:             uuid.NewString(),
		FamilyHeadName: req.FamilyHeadName,
		Age:            req.Age,
		Gender:         req.Gender,
		CasteCategory:  req.CasteCategory,
		Occupation:     req.Occupation,
		AnnualIncome:   req.AnnualIncome,
		EducationLevel: req.EducationLevel,
		HasDisability:  req.HasDisability,
		Members:        req.Members,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.store.CreateFamily(userID(r), family); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "family profile already exists"))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not store family profile"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, family)
}

func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	family, err := h.store.FamilyByUser(uid)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "family profile not found"))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not load family profile"))
		return
	}

	start := time.Now()
	schemes := eligibility.Evaluate(family)
	h.metrics.ObserveEvaluateLatency(time.Since(start))

	// A re-check keeps Applied schemes applied; the determination only
	// replaces statuses that are still open.
	existing, err := h.store.SchemesByUser(uid)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not load schemes"))
		return
	}
	applied := make(map[string]bool, len(existing))
	for _, s := range existing {
		if s.Status == models.StatusApplied || s.Status == models.StatusApproved {
			applied[s.SchemeName] = true
		}
	}
	for i, s := range schemes {
		if applied[s.SchemeName] {
			schemes[i].Status = models.StatusApplied
		}
		h.metrics.IncrementDetermination(s.SchemeName, string(schemes[i].Status))
	}

	if err := h.store.ReplaceSchemes(uid, schemes); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not store schemes"))
		return
	}

	eligibleCount := 0
	for _, s := range schemes {
		if s.Status == models.StatusEligible {
			eligibleCount++
		}
	}
	notif := models.Notification{
		ID:        uuid.NewString(),
		Title:     "Eligibility check complete",
		Message:   "Your household qualifies for new scheme benefits. Open the schemes tab to review them.",
		Type:      models.NotificationSuccess,
		CreatedAt: time.Now().UTC(),
	}
	if eligibleCount == 0 {
		notif.Title = "Eligibility check complete"
		notif.Message = "No open schemes matched your household this time."
		notif.Type = models.NotificationInfo
	}
	if err := h.store.AddNotification(uid, notif); err != nil {
		h.logger.Warn("could not add notification", "error", err)
	}

	h.logger.Info("eligibility evaluated", "user_id", uid, "eligible", eligibleCount)
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "eligibility check complete"})
}

func (h *Handler) handleEligibleSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.store.SchemesByUser(userID(r))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not load schemes"))
		return
	}
	if schemes == nil {
		schemes = []models.SchemeEligibility{}
	}
	httputil.WriteJSON(w, http.StatusOK, models.SchemesResponse{Schemes: schemes})
}

func (h *Handler) handleApplyScheme(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	schemeName := chi.URLParam(r, "schemeName")

	err := h.store.UpdateSchemeStatus(uid, schemeName, models.StatusApplied)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "scheme not found"))
		return
	case errors.Is(err, sentinel.ErrInvalidState):
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "scheme is not open for application"))
		return
	case err != nil:
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not update scheme"))
		return
	}

	notif := models.Notification{
		ID:        uuid.NewString(),
		Title:     "Application submitted",
		Message:   "Your application for " + schemeName + " has been submitted and is under review.",
		Type:      models.NotificationSuccess,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.AddNotification(uid, notif); err != nil {
		h.logger.Warn("could not add notification", "error", err)
	}

	h.logger.Info("scheme application submitted", "user_id", uid, "scheme", schemeName)
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "application submitted for " + schemeName})
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	notifs, err := h.store.NotificationsByUser(userID(r))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not load notifications"))
		return
	}
	if notifs == nil {
		notifs = []models.Notification{}
	}
	httputil.WriteJSON(w, http.StatusOK, models.NotificationsResponse{Notifications: notifs})
}

func (h *Handler) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationID")
	if err := h.store.MarkNotificationRead(userID(r), id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "notification not found"))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not update notification"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "notification marked as read"})
}

func (h *Handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart body"))
		return
	}

	documentType := r.FormValue("document_type")
	file, header, err := r.FormFile("file")
	fields := make(map[string]string)
	if documentType == "" {
		fields["document_type"] = "document type is required"
	}
	if err != nil {
		fields["file"] = "file is required"
	}
	if len(fields) > 0 {
		httputil.WriteError(w, dErrors.WithFields(dErrors.CodeValidation, "invalid document upload", fields))
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, io.LimitReader(file, maxUploadBytes))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not read upload"))
		return
	}

	doc := models.StoredDocument{
		ID:           uuid.NewString(),
		DocumentType: documentType,
		Filename:     header.Filename,
		Size:         size,
		UploadedAt:   time.Now().UTC(),
	}
	if err := h.store.AddDocument(userID(r), doc); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "could not store document"))
		return
	}

	h.logger.Info("document uploaded", "user_id", userID(r), "type", documentType, "bytes", size)
	httputil.WriteJSON(w, http.StatusOK, models.UploadResponse{
		Message:  "document uploaded successfully",
		Filename: header.Filename,
	})
}
