package coordinator_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"janseva/internal/coordinator"
	"janseva/internal/coordinator/mocks"
	"janseva/internal/platform/logger"
	"janseva/internal/portal/models"
	dErrors "janseva/pkg/domain-errors"
)

var (
	testFamily = models.FamilyProfile{
		ID:             "fam-1",
		FamilyHeadName: "Rajesh Kumar Singh",
		Age:            42,
		Gender:         "Male",
		CasteCategory:  "OBC",
		Occupation:     "Farmer",
		AnnualIncome:   95000,
		EducationLevel: "Secondary",
	}

	firstSchemes = []models.SchemeEligibility{
		{SchemeName: "PM-KISAN", Status: models.StatusEligible, AIReasoning: "landholding farmer within income ceiling"},
		{SchemeName: "PM-JAY", Status: models.StatusEligible, AIReasoning: "household income below coverage threshold"},
		{SchemeName: "PMAY-Gramin", Status: models.StatusNotEligible, AIReasoning: "income above the housing assistance ceiling"},
	}

	firstNotifications = []models.Notification{
		{ID: "n-2", Title: "Eligibility updated", Type: models.NotificationInfo, Read: false},
		{ID: "n-1", Title: "Welcome", Type: models.NotificationSuccess, Read: true},
	}
)

func newCoordinator(t *testing.T) (*coordinator.Coordinator, *mocks.MockPortalAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockPortalAPI(ctrl)
	return coordinator.New(api, logger.Discard()), api
}

func expectRefresh(api *mocks.MockPortalAPI, family models.FamilyProfile, schemes []models.SchemeEligibility, notifs []models.Notification) {
	api.EXPECT().FamilyProfile(gomock.Any()).Return(family, nil)
	api.EXPECT().EligibleSchemes(gomock.Any()).Return(schemes, nil)
	api.EXPECT().Notifications(gomock.Any()).Return(notifs, nil)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("loads family, schemes, and notifications", func(t *testing.T) {
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)

		require.NoError(t, c.Refresh(ctx))

		family, ok := c.Family()
		assert.True(t, ok)
		assert.Equal(t, testFamily, family)
		assert.Equal(t, firstSchemes, c.Schemes())
		assert.Equal(t, firstNotifications, c.Notifications())
		assert.True(t, c.HasProfile())
		assert.True(t, c.HasSchemesComputed())
	})

	t.Run("missing family profile is a valid state", func(t *testing.T) {
		c, api := newCoordinator(t)
		api.EXPECT().FamilyProfile(gomock.Any()).Return(models.FamilyProfile{}, dErrors.New(dErrors.CodeNotFound, "family profile not found"))
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(nil, nil)
		api.EXPECT().Notifications(gomock.Any()).Return(nil, nil)

		require.NoError(t, c.Refresh(ctx))

		assert.False(t, c.HasProfile())
		_, ok := c.Family()
		assert.False(t, ok)
	})

	t.Run("an empty scheme list means no determination exists", func(t *testing.T) {
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, []models.SchemeEligibility{}, nil)

		require.NoError(t, c.Refresh(ctx))

		assert.False(t, c.HasSchemesComputed())
	})

	t.Run("a failed refresh keeps the prior snapshot", func(t *testing.T) {
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)
		require.NoError(t, c.Refresh(ctx))

		api.EXPECT().FamilyProfile(gomock.Any()).Return(models.FamilyProfile{}, dErrors.New(dErrors.CodeUnavailable, "portal unreachable")).AnyTimes()
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(nil, nil).AnyTimes()
		api.EXPECT().Notifications(gomock.Any()).Return(nil, nil).AnyTimes()

		err := c.Refresh(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
		assert.Equal(t, firstSchemes, c.Schemes())
		assert.True(t, c.HasProfile())
	})
}

func TestCheckEligibility(t *testing.T) {
	ctx := context.Background()

	seeded := func(t *testing.T) (*coordinator.Coordinator, *mocks.MockPortalAPI) {
		t.Helper()
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)
		require.NoError(t, c.Refresh(ctx))
		return c, api
	}

	t.Run("commits the refetched schemes and notifications together", func(t *testing.T) {
		c, api := seeded(t)

		updatedSchemes := append([]models.SchemeEligibility{
			{SchemeName: "MGNREGA", Status: models.StatusEligible, AIReasoning: "rural household below the wage-work income line"},
		}, firstSchemes...)
		updatedNotifs := append([]models.Notification{
			{ID: "n-3", Title: "Eligibility check complete", Type: models.NotificationSuccess},
		}, firstNotifications...)

		gomock.InOrder(
			api.EXPECT().RunEligibilityCheck(gomock.Any()).Return(nil),
		)
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(updatedSchemes, nil)
		api.EXPECT().Notifications(gomock.Any()).Return(updatedNotifs, nil)

		require.NoError(t, c.CheckEligibility(ctx))

		assert.Equal(t, updatedSchemes, c.Schemes())
		assert.Equal(t, updatedNotifs, c.Notifications())
		assert.False(t, c.Busy())
	})

	t.Run("a failed trigger leaves the snapshot untouched", func(t *testing.T) {
		c, api := seeded(t)

		api.EXPECT().RunEligibilityCheck(gomock.Any()).Return(dErrors.New(dErrors.CodeTimeout, "portal call timed out"))

		err := c.CheckEligibility(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
		assert.Equal(t, firstSchemes, c.Schemes())
		assert.Equal(t, firstNotifications, c.Notifications())
		assert.False(t, c.Busy())
	})

	t.Run("a partial refetch failure commits neither list", func(t *testing.T) {
		c, api := seeded(t)

		api.EXPECT().RunEligibilityCheck(gomock.Any()).Return(nil)
		api.EXPECT().EligibleSchemes(gomock.Any()).Return([]models.SchemeEligibility{
			{SchemeName: "MGNREGA", Status: models.StatusEligible},
		}, nil).AnyTimes()
		api.EXPECT().Notifications(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnavailable, "portal unreachable")).AnyTimes()

		err := c.CheckEligibility(ctx)
		require.Error(t, err)

		// Neither the fetched schemes nor anything else replaced the
		// snapshot.
		assert.Equal(t, firstSchemes, c.Schemes())
		assert.Equal(t, firstNotifications, c.Notifications())
	})

	t.Run("requires a family profile first", func(t *testing.T) {
		c, api := newCoordinator(t)
		api.EXPECT().FamilyProfile(gomock.Any()).Return(models.FamilyProfile{}, dErrors.New(dErrors.CodeNotFound, "family profile not found"))
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(nil, nil)
		api.EXPECT().Notifications(gomock.Any()).Return(nil, nil)
		require.NoError(t, c.Refresh(ctx))

		err := c.CheckEligibility(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("a second protocol while one is in flight is rejected", func(t *testing.T) {
		c, api := seeded(t)

		started := make(chan struct{})
		release := make(chan struct{})
		api.EXPECT().RunEligibilityCheck(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(started)
			<-release
			return nil
		})
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(firstSchemes, nil)
		api.EXPECT().Notifications(gomock.Any()).Return(firstNotifications, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.CheckEligibility(ctx))
		}()

		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("first protocol never started")
		}
		assert.True(t, c.Busy())

		err := c.ApplyToScheme(ctx, "PM-KISAN")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

		close(release)
		wg.Wait()
		assert.False(t, c.Busy())
	})
}

func TestApplyToScheme(t *testing.T) {
	ctx := context.Background()

	seeded := func(t *testing.T) (*coordinator.Coordinator, *mocks.MockPortalAPI) {
		t.Helper()
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)
		require.NoError(t, c.Refresh(ctx))
		return c, api
	}

	t.Run("applies and commits the refetched state", func(t *testing.T) {
		c, api := seeded(t)

		applied := []models.SchemeEligibility{
			{SchemeName: "PM-KISAN", Status: models.StatusApplied, AIReasoning: "landholding farmer within income ceiling"},
			firstSchemes[1],
			firstSchemes[2],
		}
		notifs := append([]models.Notification{
			{ID: "n-3", Title: "Application submitted", Type: models.NotificationSuccess},
		}, firstNotifications...)

		api.EXPECT().ApplyToScheme(gomock.Any(), "PM-KISAN").Return(nil)
		api.EXPECT().EligibleSchemes(gomock.Any()).Return(applied, nil)
		api.EXPECT().Notifications(gomock.Any()).Return(notifs, nil)

		require.NoError(t, c.ApplyToScheme(ctx, "PM-KISAN"))
		assert.Equal(t, applied, c.Schemes())
		assert.Equal(t, notifs, c.Notifications())
	})

	t.Run("rejects a scheme the snapshot does not show as eligible", func(t *testing.T) {
		c, _ := seeded(t)

		err := c.ApplyToScheme(ctx, "PMAY-Gramin")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("rejects a scheme absent from the snapshot", func(t *testing.T) {
		c, _ := seeded(t)

		err := c.ApplyToScheme(ctx, "No Such Scheme")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("a rejected application leaves the snapshot untouched", func(t *testing.T) {
		c, api := seeded(t)

		api.EXPECT().ApplyToScheme(gomock.Any(), "PM-JAY").Return(dErrors.New(dErrors.CodeConflict, "already applied"))

		err := c.ApplyToScheme(ctx, "PM-JAY")
		require.Error(t, err)
		assert.Equal(t, firstSchemes, c.Schemes())
	})
}

func TestSubmitFamilyProfile(t *testing.T) {
	ctx := context.Background()
	req := models.FamilyProfileRequest{
		FamilyHeadName: "Rajesh Kumar Singh",
		Age:            42,
		Gender:         "Male",
		CasteCategory:  "OBC",
		Occupation:     "Farmer",
		AnnualIncome:   95000,
		EducationLevel: "Secondary",
	}

	t.Run("commits the created profile", func(t *testing.T) {
		c, api := newCoordinator(t)
		api.EXPECT().SubmitFamilyProfile(gomock.Any(), req).Return(testFamily, nil)

		require.NoError(t, c.SubmitFamilyProfile(ctx, req))
		assert.True(t, c.HasProfile())
		family, ok := c.Family()
		assert.True(t, ok)
		assert.Equal(t, testFamily, family)
	})

	t.Run("a duplicate submission surfaces the conflict", func(t *testing.T) {
		c, api := newCoordinator(t)
		api.EXPECT().SubmitFamilyProfile(gomock.Any(), req).Return(models.FamilyProfile{}, dErrors.New(dErrors.CodeConflict, "family profile already exists"))

		err := c.SubmitFamilyProfile(ctx, req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
		assert.False(t, c.HasProfile())
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("marking read refetches the list", func(t *testing.T) {
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)
		require.NoError(t, c.Refresh(ctx))
		assert.Equal(t, 1, c.UnreadNotificationCount())

		allRead := []models.Notification{
			{ID: "n-2", Title: "Eligibility updated", Type: models.NotificationInfo, Read: true},
			{ID: "n-1", Title: "Welcome", Type: models.NotificationSuccess, Read: true},
		}
		gomock.InOrder(
			api.EXPECT().MarkNotificationRead(gomock.Any(), "n-2").Return(nil),
			api.EXPECT().Notifications(gomock.Any()).Return(allRead, nil),
		)

		require.NoError(t, c.MarkNotificationRead(ctx, "n-2"))
		assert.Equal(t, 0, c.UnreadNotificationCount())
	})

	t.Run("a failed mark leaves the list untouched", func(t *testing.T) {
		c, api := newCoordinator(t)
		expectRefresh(api, testFamily, firstSchemes, firstNotifications)
		require.NoError(t, c.Refresh(ctx))

		api.EXPECT().MarkNotificationRead(gomock.Any(), "n-9").Return(dErrors.New(dErrors.CodeNotFound, "notification not found"))

		err := c.MarkNotificationRead(ctx, "n-9")
		require.Error(t, err)
		assert.Equal(t, firstNotifications, c.Notifications())
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	c, api := newCoordinator(t)
	expectRefresh(api, testFamily, firstSchemes, firstNotifications)
	require.NoError(t, c.Refresh(ctx))

	c.Reset()

	assert.False(t, c.HasProfile())
	assert.False(t, c.HasSchemesComputed())
	assert.Empty(t, c.Schemes())
	assert.Empty(t, c.Notifications())
	assert.Equal(t, 0, c.UnreadNotificationCount())
	assert.False(t, c.Busy())
}
