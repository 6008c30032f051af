package notifyfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nudge/internal/adapters/notifyfile"
	"go.trai.ch/nudge/internal/core/domain"
)

func TestStore_AddPendingRemove(t *testing.T) {
	ctx := context.Background()
	store, err := notifyfile.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	ids, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	trigger := domain.Trigger{Kind: domain.TriggerWeeklyCalendar, Weekday: 2, Hour: 9, Repeats: true}
	content := domain.Content{Title: "Stretch", Sound: domain.DefaultSound}

	require.NoError(t, store.Add(ctx, "dailyTask.t1.wd2", trigger, content))
	require.NoError(t, store.Add(ctx, "dailyTask.t1.wd4", trigger, content))
	require.NoError(t, store.Add(ctx, "habit.daily.wd2", trigger, content))

	ids, err = store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dailyTask.t1.wd2", "dailyTask.t1.wd4", "habit.daily.wd2"}, ids)

	// Removing unknown identifiers is a no-op, not an error.
	require.NoError(t, store.Remove(ctx, []string{"dailyTask.t1.wd2", "dailyTask.missing"}))

	ids, err = store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dailyTask.t1.wd4", "habit.daily.wd2"}, ids)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := notifyfile.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, "mealReminder.breakfast", domain.Trigger{
		Kind:   domain.TriggerCalendarDate,
		Hour:   8,
		Minute: 0,
	}, domain.Content{Title: "Meal time"}))

	reopened, err := notifyfile.NewStore(path)
	require.NoError(t, err)

	ids, err := reopened.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mealReminder.breakfast"}, ids)
}

func TestStore_AddReplacesSameIdentifier(t *testing.T) {
	ctx := context.Background()
	store, err := notifyfile.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	id := "mealReminder.breakfast"
	require.NoError(t, store.Add(ctx, id, domain.Trigger{Hour: 8}, domain.Content{}))
	require.NoError(t, store.Add(ctx, id, domain.Trigger{Hour: 9}, domain.Content{}))

	ids, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, ids)
}

func TestStore_AlwaysAuthorized(t *testing.T) {
	ctx := context.Background()
	store, err := notifyfile.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	ok, err := store.Authorized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	granted, err := store.RequestAuthorization(ctx)
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestNewStore_CreatesStateDirOnFirstWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	store, err := notifyfile.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, "dailyTask.t1", domain.Trigger{Hour: 9}, domain.Content{}))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestNewStore_CorruptStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := notifyfile.NewStore(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read notification state")
}
