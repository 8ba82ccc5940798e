package sessions_test

import (
	"testing"
	"time"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/sessions"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	repo := sessions.NewInMemoryRepo()
	now := time.Now()

	require.Error(t, repo.Upsert(sessions.Session{}))
	require.NoError(t, repo.Upsert(sessions.Session{ID: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Upsert(sessions.Session{ID: "stale", ExpiresAt: now.Add(-time.Minute)}))

	require.Equal(t, 1, repo.DeleteExpired(now))

	got, err := repo.Get("live")
	require.NoError(t, err)
	require.Equal(t, "live", got.ID)

	_, err = repo.Get("stale")
	require.Error(t, err)

	later := now.Add(2 * time.Hour)
	require.NoError(t, repo.Touch("live", later))
	got, err = repo.Get("live")
	require.NoError(t, err)
	require.True(t, later.Equal(got.ExpiresAt))

	require.NoError(t, repo.Delete("live"))
	require.NoError(t, repo.Delete("live"))
	require.True(t, apperrors.Is(repo.Touch("live", later), apperrors.ErrSessionNotFound))
	require.Error(t, repo.Touch("", later))
	_, err = repo.Get("live")
	require.Error(t, err)
}
