package reconciler_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nudge/internal/adapters/notifyfile"
	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/nudge/internal/core/ports/mocks"
	"go.trai.ch/nudge/internal/engine/reconciler"
	"go.trai.ch/nudge/internal/rules"
	"go.uber.org/mock/gomock"
)

type reconcilerTestMocks struct {
	store  *mocks.MockNotificationStore
	clock  *mocks.MockClock
	logger *mocks.MockLogger
}

// setupReconcilerTest creates a reconciler and common mocks. Logging is
// allowed but not asserted.
func setupReconcilerTest(t *testing.T) (*reconciler.Reconciler, reconcilerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reconcilerTestMocks{
		store:  mocks.NewMockNotificationStore(ctrl),
		clock:  mocks.NewMockClock(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	r := reconciler.New(m.store, m.clock, m.logger)
	return r, m
}

func TestReconcile_RemovesStaleBeforeAdding(t *testing.T) {
	r, m := setupReconcilerTest(t)
	m.clock.EXPECT().Now().Return(wednesday).AnyTimes()

	pending := []string{
		"dailyTask.t1.wd2",
		"dailyTask.deleted",
		"habit.daily.wd1", // other domain, must stay untouched
	}

	gomock.InOrder(
		m.store.EXPECT().Authorized(gomock.Any()).Return(true, nil),
		m.store.EXPECT().Pending(gomock.Any()).Return(pending, nil),
		m.store.EXPECT().Remove(gomock.Any(), []string{"dailyTask.t1.wd2", "dailyTask.deleted"}).Return(nil),
		m.store.EXPECT().Add(gomock.Any(), "dailyTask.t1.wd2", gomock.Any(), gomock.Any()).Return(nil),
	)

	err := r.Reconcile(context.Background(), domain.DomainDailyTask, []domain.Rule{
		domain.WeeklyRecurring{
			Entity:   "t1",
			Weekdays: []int{2},
			Hour:     9,
			Content:  domain.Content{Title: "t1"},
		},
	})
	require.NoError(t, err)
}

func TestReconcile_AuthorizationDeniedIsNoOp(t *testing.T) {
	r, m := setupReconcilerTest(t)

	m.store.EXPECT().Authorized(gomock.Any()).Return(false, nil)
	m.store.EXPECT().RequestAuthorization(gomock.Any()).Return(false, nil)
	// No Pending, Remove or Add calls: pending triggers of every domain stay.

	err := r.Reconcile(context.Background(), domain.DomainDailyTask, []domain.Rule{
		domain.DailyCountdownAt{Entity: "t1", Hour: 9},
	})
	require.NoError(t, err)
}

func TestReconcile_AuthorizationGrantedOnRequest(t *testing.T) {
	r, m := setupReconcilerTest(t)
	m.clock.EXPECT().Now().Return(wednesday).AnyTimes()

	m.store.EXPECT().Authorized(gomock.Any()).Return(false, nil)
	m.store.EXPECT().RequestAuthorization(gomock.Any()).Return(true, nil)
	m.store.EXPECT().Pending(gomock.Any()).Return(nil, nil)
	m.store.EXPECT().Add(gomock.Any(), "mealReminder.breakfast", gomock.Any(), gomock.Any()).Return(nil)

	err := r.Reconcile(context.Background(), domain.DomainMealReminder, []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
	})
	require.NoError(t, err)
}

func TestReconcile_EmptyRulesClearsDomain(t *testing.T) {
	r, m := setupReconcilerTest(t)

	pending := []string{"mealReminder.breakfast", "mealReminder.lunch", "dailyTask.t1"}

	m.store.EXPECT().Authorized(gomock.Any()).Return(true, nil)
	m.store.EXPECT().Pending(gomock.Any()).Return(pending, nil)
	m.store.EXPECT().Remove(gomock.Any(), []string{"mealReminder.breakfast", "mealReminder.lunch"}).Return(nil)
	// No Add calls: the delete-all path stops after the sweep.

	err := r.Reconcile(context.Background(), domain.DomainMealReminder, nil)
	require.NoError(t, err)
}

func TestReconcile_AddFailureDoesNotBlockOthers(t *testing.T) {
	r, m := setupReconcilerTest(t)
	m.clock.EXPECT().Now().Return(wednesday).AnyTimes()

	m.store.EXPECT().Authorized(gomock.Any()).Return(true, nil)
	m.store.EXPECT().Pending(gomock.Any()).Return(nil, nil)
	m.store.EXPECT().Add(gomock.Any(), "mealReminder.breakfast", gomock.Any(), gomock.Any()).
		Return(errors.New("quota exceeded"))
	m.store.EXPECT().Add(gomock.Any(), "mealReminder.lunch", gomock.Any(), gomock.Any()).Return(nil)

	err := r.Reconcile(context.Background(), domain.DomainMealReminder, []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
		domain.DailyCountdownAt{Entity: "lunch", Hour: 12},
	})
	require.NoError(t, err)
}

func TestReconcile_RemoveFailureContinuesBestEffort(t *testing.T) {
	r, m := setupReconcilerTest(t)
	m.clock.EXPECT().Now().Return(wednesday).AnyTimes()

	m.store.EXPECT().Authorized(gomock.Any()).Return(true, nil)
	m.store.EXPECT().Pending(gomock.Any()).Return([]string{"mealReminder.breakfast"}, nil)
	m.store.EXPECT().Remove(gomock.Any(), []string{"mealReminder.breakfast"}).
		Return(errors.New("store unavailable"))
	m.store.EXPECT().Add(gomock.Any(), "mealReminder.breakfast", gomock.Any(), gomock.Any()).Return(nil)

	err := r.Reconcile(context.Background(), domain.DomainMealReminder, []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
	})
	require.NoError(t, err)
}

func TestReconcile_ListPendingFailureAbortsPass(t *testing.T) {
	r, m := setupReconcilerTest(t)

	m.store.EXPECT().Authorized(gomock.Any()).Return(true, nil)
	m.store.EXPECT().Pending(gomock.Any()).Return(nil, errors.New("store unavailable"))

	err := r.Reconcile(context.Background(), domain.DomainMealReminder, []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to list pending")
}

func TestCancel_RemovesSingleIDWithoutListing(t *testing.T) {
	r, m := setupReconcilerTest(t)

	// Only the removal: no authorization check, no pending listing.
	m.store.EXPECT().Remove(gomock.Any(), []string{"activityTimer.tm1"}).Return(nil)

	err := r.Cancel(context.Background(), domain.DomainActivityTimer, "tm1")
	require.NoError(t, err)
}

// newFileStore creates a real file-backed store in a temp dir for
// integration-style reconciliation tests.
func newFileStore(t *testing.T) *notifyfile.Store {
	t.Helper()
	store, err := notifyfile.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return store
}

func setupIntegrationTest(t *testing.T, now time.Time) (*reconciler.Reconciler, *notifyfile.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	store := newFileStore(t)
	return reconciler.New(store, clock, logger), store
}

func TestReconcile_Idempotence(t *testing.T) {
	r, store := setupIntegrationTest(t, wednesday)
	ctx := context.Background()

	ruleSet := []domain.Rule{
		domain.WeeklyRecurring{
			Entity:   "t1",
			Weekdays: []int{1, 2, 3, 4, 5, 6, 7},
			Hour:     9,
			Content:  domain.Content{Title: "t1", Body: "Reminder: t1"},
		},
	}

	require.NoError(t, r.Reconcile(ctx, domain.DomainDailyTask, ruleSet))
	first, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, first, 7)

	require.NoError(t, r.Reconcile(ctx, domain.DomainDailyTask, ruleSet))
	second, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReconcile_DeletedRuleStopsFiring(t *testing.T) {
	r, store := setupIntegrationTest(t, wednesday)
	ctx := context.Background()

	both := []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
		domain.DailyCountdownAt{Entity: "lunch", Hour: 12},
	}
	require.NoError(t, r.Reconcile(ctx, domain.DomainMealReminder, both))

	// Breakfast deleted: its trigger must not survive the next pass.
	require.NoError(t, r.Reconcile(ctx, domain.DomainMealReminder, both[1:]))

	ids, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mealReminder.lunch"}, ids)
}

func TestReconcile_FullClearLeavesOtherDomainsAlone(t *testing.T) {
	r, store := setupIntegrationTest(t, wednesday)
	ctx := context.Background()

	require.NoError(t, r.Reconcile(ctx, domain.DomainMealReminder, []domain.Rule{
		domain.DailyCountdownAt{Entity: "breakfast", Hour: 8},
	}))
	require.NoError(t, r.Reconcile(ctx, domain.DomainActivityTimer, []domain.Rule{
		domain.OneShotAfter{Entity: "tm1", FireAt: wednesday.Add(time.Hour)},
	}))

	require.NoError(t, r.Reconcile(ctx, domain.DomainMealReminder, nil))

	ids, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"activityTimer.tm1"}, ids)
}

func TestReconcile_DailyCheckInScenario(t *testing.T) {
	// 2024-03-16 was a Saturday (host weekday 7, UI index 5).
	saturday := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	r, store := setupIntegrationTest(t, saturday)
	ctx := context.Background()

	prefs := domain.CheckInPrefs{
		AutoRestDays:   []int{5}, // Saturday is a typical rest day
		CompletedToday: []int{5},
	}
	require.NoError(t, r.Reconcile(ctx, domain.DomainDailyCheckIn, rules.CheckIns(prefs, saturday)))

	ids, err := store.Pending(ctx)
	require.NoError(t, err)

	// Saturday is excluded as rest, so six triggers remain and no
	// suppression is needed for the completed check-in.
	assert.Equal(t, []string{
		"dailyCheckIn.wd1",
		"dailyCheckIn.wd2",
		"dailyCheckIn.wd3",
		"dailyCheckIn.wd4",
		"dailyCheckIn.wd5",
		"dailyCheckIn.wd6",
	}, ids)
}
