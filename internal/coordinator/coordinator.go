// Package coordinator owns the client-side view of the portal's records: the
// family profile, the eligibility projection, and the notification list. All
// reads come from its snapshot; all writes go through named protocols that
// either commit a full refetch or leave the snapshot untouched.
package coordinator

//go:generate mockgen -source=coordinator.go -destination=mocks/mocks.go -package=mocks PortalAPI

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"janseva/internal/portal/models"
	dErrors "janseva/pkg/domain-errors"
)

// PortalAPI is the slice of the portal contract the coordinator drives.
type PortalAPI interface {
	FamilyProfile(ctx context.Context) (models.FamilyProfile, error)
	SubmitFamilyProfile(ctx context.Context, req models.FamilyProfileRequest) (models.FamilyProfile, error)
	RunEligibilityCheck(ctx context.Context) error
	EligibleSchemes(ctx context.Context) ([]models.SchemeEligibility, error)
	ApplyToScheme(ctx context.Context, schemeName string) error
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, documentType, filename string, content io.Reader) (string, error)
}

// Coordinator serializes mutating protocols (at most one in flight) while
// keeping the snapshot readable at all times. It assumes an authenticated
// session; Reset must be called when the session ends.
type Coordinator struct {
	api    PortalAPI
	logger *slog.Logger

	mu             sync.RWMutex
	busy           bool
	family         *models.FamilyProfile
	schemes        []models.SchemeEligibility
	schemesFetched bool
	notifications  []models.Notification
}

func New(api PortalAPI, logger *slog.Logger) *Coordinator {
	return &Coordinator{api: api, logger: logger}
}

// Refresh loads the whole snapshot concurrently. A missing family profile is
// a valid state, not a failure; any other error leaves the snapshot as it
// was.
func (c *Coordinator) Refresh(ctx context.Context) error {
	var (
		family  *models.FamilyProfile
		schemes []models.SchemeEligibility
		notifs  []models.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := c.api.FamilyProfile(gctx)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeNotFound) {
				return nil
			}
			return err
		}
		family = &profile
		return nil
	})
	g.Go(func() error {
		var err error
		schemes, err = c.api.EligibleSchemes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		notifs, err = c.api.Notifications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.family = family
	c.schemes = schemes
	c.schemesFetched = true
	c.notifications = notifs
	c.mu.Unlock()
	return nil
}

// SubmitFamilyProfile creates the household record and commits it to the
// snapshot. A second submission surfaces the server's conflict unchanged.
func (c *Coordinator) SubmitFamilyProfile(ctx context.Context, req models.FamilyProfileRequest) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	profile, err := c.api.SubmitFamilyProfile(ctx, req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.family = &profile
	c.mu.Unlock()
	return nil
}

// CheckEligibility runs the recomputation protocol: trigger the server-side
// check, then refetch schemes and notifications together. The snapshot
// commits both lists or neither; a failure in any step leaves the prior
// snapshot intact so the view never shows a half-updated state.
func (c *Coordinator) CheckEligibility(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if !c.HasProfile() {
		return dErrors.New(dErrors.CodeConflict, "submit a family profile before checking eligibility")
	}

	if err := c.api.RunEligibilityCheck(ctx); err != nil {
		return err
	}

	schemes, notifs, err := c.fetchSchemesAndNotifications(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.schemes = schemes
	c.schemesFetched = true
	c.notifications = notifs
	c.mu.Unlock()
	return nil
}

// ApplyToScheme submits an application for a scheme the snapshot currently
// shows as Eligible, then refetches schemes and notifications together with
// the same commit-or-nothing rule as CheckEligibility.
func (c *Coordinator) ApplyToScheme(ctx context.Context, schemeName string) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if !c.eligibleFor(schemeName) {
		return dErrors.Newf(dErrors.CodeConflict, "scheme %q is not open for application", schemeName)
	}

	if err := c.api.ApplyToScheme(ctx, schemeName); err != nil {
		return err
	}

	schemes, notifs, err := c.fetchSchemesAndNotifications(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.schemes = schemes
	c.schemesFetched = true
	c.notifications = notifs
	c.mu.Unlock()
	return nil
}

// MarkNotificationRead marks one notification read and refetches the list so
// the unread count stays server-authoritative.
func (c *Coordinator) MarkNotificationRead(ctx context.Context, id string) error {
	if err := c.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	notifs, err := c.api.Notifications(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.notifications = notifs
	c.mu.Unlock()
	return nil
}

// UploadDocument stores a supporting document. It touches no snapshot state.
func (c *Coordinator) UploadDocument(ctx context.Context, documentType, filename string, content io.Reader) (string, error) {
	return c.api.UploadDocument(ctx, documentType, filename, content)
}

// Reset discards the snapshot. Called on logout so the next session starts
// from nothing.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.busy = false
	c.family = nil
	c.schemes = nil
	c.schemesFetched = false
	c.notifications = nil
	c.mu.Unlock()
}

// Busy reports whether a mutating protocol is in flight.
func (c *Coordinator) Busy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.busy
}

// Family returns the household record, or ok=false when none exists.
func (c *Coordinator) Family() (models.FamilyProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.family == nil {
		return models.FamilyProfile{}, false
	}
	return *c.family, true
}

// HasProfile reports whether the household record exists.
func (c *Coordinator) HasProfile() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.family != nil
}

// Schemes returns the eligibility projection in server order.
func (c *Coordinator) Schemes() []models.SchemeEligibility {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schemes
}

// HasSchemesComputed reports whether a determination exists. An empty scheme
// list means no check has produced results yet, even after a fetch.
func (c *Coordinator) HasSchemesComputed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schemesFetched && len(c.schemes) > 0
}

// Notifications returns the notification list in server order, newest first.
func (c *Coordinator) Notifications() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// UnreadNotificationCount is derived from the snapshot, never stored.
func (c *Coordinator) UnreadNotificationCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, notif := range c.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// acquire takes the busy gate. A second mutating protocol while one is in
// flight is a caller error surfaced as a conflict, not queued.
func (c *Coordinator) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return dErrors.New(dErrors.CodeConflict, "another operation is in progress")
	}
	c.busy = true
	return nil
}

func (c *Coordinator) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Coordinator) eligibleFor(schemeName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.schemes {
		if s.SchemeName == schemeName {
			return s.Status == models.StatusEligible
		}
	}
	return false
}

// fetchSchemesAndNotifications loads both lists concurrently and returns them
// together so callers can commit atomically.
func (c *Coordinator) fetchSchemesAndNotifications(ctx context.Context) ([]models.SchemeEligibility, []models.Notification, error) {
	var (
		schemes []models.SchemeEligibility
		notifs  []models.Notification
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schemes, err = c.api.EligibleSchemes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		notifs, err = c.api.Notifications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("post-mutation refetch failed; keeping prior snapshot", "error", err)
		return nil, nil, err
	}
	return schemes, notifs, nil
}
