package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession("Math", 45, testutil.WithNotes("Worked through chapter 3"))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", fetched.Subject)
	assert.Equal(t, 45, fetched.DurationMin)
	assert.Equal(t, "Worked through chapter 3", fetched.Notes)
	assert.Equal(t, sess.Date.Format("2006-01-02"), fetched.Date.Format("2006-01-02"))
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_List_OldestFirst(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	s1 := testutil.NewTestSession("Math", 30, testutil.WithCreatedAt(now.Add(-2*time.Hour)))
	s2 := testutil.NewTestSession("Physics", 45, testutil.WithCreatedAt(now.Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, s2))
	require.NoError(t, repo.Create(ctx, s1))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Math", list[0].Subject)
	assert.Equal(t, "Physics", list[1].Subject)
}

func TestSessionRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	recent := testutil.NewTestSession("Math", 30, testutil.WithCreatedAt(now.Add(-24*time.Hour)))
	old := testutil.NewTestSession("History", 60, testutil.WithCreatedAt(now.Add(-30*24*time.Hour)))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, old))

	list, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Math", list[0].Subject)
}
