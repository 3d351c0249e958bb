// Package repotest holds the behaviour every repository.Storage backend must share.
package repotest

import (
	"context"
	"testing"
	"time"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func RunStorageSuite(t *testing.T, newStorage func(t *testing.T) repository.Storage) {
	t.Run("users", func(t *testing.T) {
		testUsers(t, newStorage(t))
	})
	t.Run("shortcuts", func(t *testing.T) {
		testShortcuts(t, newStorage(t))
	})
	t.Run("ownership", func(t *testing.T) {
		testOwnership(t, newStorage(t))
	})
}

func createUser(t *testing.T, st repository.Storage, name string) models.User {
	t.Helper()
	u, err := st.UserCreate(context.Background(), models.User{
		Username:     name,
		PasswordHash: "hash-" + name,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	return u
}

func testUsers(t *testing.T, st repository.Storage) {
	ctx := context.Background()
	u := createUser(t, st, "alice")

	_, err := st.UserCreate(ctx, models.User{Username: "alice", PasswordHash: "x", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = st.UserCreate(ctx, models.User{Username: "", PasswordHash: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidData)

	got, err := st.UserGetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash-alice", got.PasswordHash)

	got, err = st.UserGetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = st.UserGetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrUnfound)

	assert.NoError(t, st.Ping(ctx))
}

func testShortcuts(t *testing.T, st repository.Storage) {
	ctx := context.Background()
	u := createUser(t, st, "carol")
	now := time.Now().UTC().Truncate(time.Second)

	created, err := st.ShortcutCreate(ctx, models.Shortcut{
		UserID:       u.ID,
		Name:         "Test",
		Icon:         "img/pasta.png",
		Action:       "open-url",
		ActionParams: []byte(`{"url":"https://x.com"}`),
		PositionX:    100,
		PositionY:    100,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	list, err := st.ShortcutListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Test", list[0].Name)
	assert.Equal(t, "img/pasta.png", list[0].Icon)
	assert.Equal(t, "open-url", list[0].Action)
	assert.JSONEq(t, `{"url":"https://x.com"}`, string(list[0].ActionParams))
	assert.Equal(t, 100, list[0].PositionX)

	created.Name = "Renamed"
	created.PositionX = 250
	created.PositionY = 40
	created.UpdatedAt = now.Add(time.Minute)
	updated, err := st.ShortcutUpdate(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 250, updated.PositionX)
	assert.Equal(t, 40, updated.PositionY)

	_, err = st.ShortcutUpdate(ctx, models.Shortcut{ID: 9999, UserID: u.ID, Name: "x"})
	assert.ErrorIs(t, err, models.ErrUnfound)

	require.NoError(t, st.ShortcutDelete(ctx, u.ID, created.ID))
	assert.ErrorIs(t, st.ShortcutDelete(ctx, u.ID, created.ID), models.ErrUnfound)

	list, err = st.ShortcutListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testOwnership(t *testing.T, st repository.Storage) {
	ctx := context.Background()
	owner := createUser(t, st, "dave")
	other := createUser(t, st, "erin")
	now := time.Now().UTC()

	sc, err := st.ShortcutCreate(ctx, models.Shortcut{UserID: owner.ID, Name: "Mine", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	list, err := st.ShortcutListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	sc.UserID = other.ID
	_, err = st.ShortcutUpdate(ctx, sc)
	assert.ErrorIs(t, err, models.ErrUnfound)
	assert.ErrorIs(t, st.ShortcutDelete(ctx, other.ID, sc.ID), models.ErrUnfound)

	list, err = st.ShortcutListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].Name)
	assert.Empty(t, list[0].Icon)
	assert.Nil(t, list[0].ActionParams)
}
