package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/pkg/hasher"
)

func registerInput(username, email string) RegisterInput {
	return RegisterInput{
		Username: username,
		Email:    email,
		FullName: "Test User",
		Password: "Sup3rSecret",
		Role:     "realtor",
	}
}

func TestUserServiceCreateNeverStoresPlaintext(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), registerInput("alice", "alice@example.com"))
	require.NoError(t, err)

	assert.False(t, created.Disabled)
	assert.Equal(t, domain.RoleRealtor, created.Role)
	assert.NotEqual(t, "Sup3rSecret", created.PasswordHash)
	assert.True(t, hasher.Check("Sup3rSecret", created.PasswordHash))
	assert.False(t, hasher.Check("WrongPassw0rd", created.PasswordHash))

	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "Sup3rSecret")
}

func TestUserServiceCreateDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), registerInput("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), registerInput("alice", "other@example.com"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), registerInput("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), registerInput("bob", "alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}
