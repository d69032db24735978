package database

import (
	"context"
	"fmt"
	"tablica-wiadomosci/internal/auth"
	"tablica-wiadomosci/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createRandomMember(t *testing.T) *models.Member {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	username := fmt.Sprintf("member_%s", uuid.NewString()[:8])
	member, err := testStore.CreateMember(context.Background(), CreateMemberParams{
		Name:         "Test Member",
		Username:     username,
		PasswordHash: hashedPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, member)
	return member
}

func TestCreateMember(t *testing.T) {
	member := createRandomMember(t)

	require.NotZero(t, member.ID)
	require.Equal(t, "Test Member", member.Name)
	require.NotEmpty(t, member.PasswordHash)
	require.Zero(t, member.FollowerCount)
	require.NotZero(t, member.Time)
}

func TestCreateMember_DuplicateUsername(t *testing.T) {
	member := createRandomMember(t)

	_, err := testStore.CreateMember(context.Background(), CreateMemberParams{
		Name:         "Impostor",
		Username:     member.Username,
		PasswordHash: "irrelevant",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)

	var count int
	err = testStore.GetPool().QueryRow(context.Background(),
		"SELECT count(*) FROM member WHERE username = $1", member.Username).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "duplicate registration must not write a second row")
}

func TestGetMemberByUsername(t *testing.T) {
	member := createRandomMember(t)

	foundMember, err := testStore.GetMemberByUsername(context.Background(), member.Username)

	require.NoError(t, err)
	require.NotNil(t, foundMember)

	require.Equal(t, member.ID, foundMember.ID)
	require.Equal(t, member.Username, foundMember.Username)
	require.Equal(t, "Test Member", foundMember.Name)
	require.NotEmpty(t, foundMember.PasswordHash)

	nonExistentMember, err := testStore.GetMemberByUsername(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.Nil(t, nonExistentMember)
}

func TestUpdateMemberName(t *testing.T) {
	member := createRandomMember(t)

	ok, err := testStore.UpdateMemberName(context.Background(), member.Username, "Renamed Member")
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := testStore.GetMemberByUsername(context.Background(), member.Username)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Renamed Member", updated.Name)

	ok, err = testStore.UpdateMemberName(context.Background(), "nonexistent", "Anything")
	require.NoError(t, err)
	require.False(t, ok)
}
