package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/domain/repository"
	"github.com/dkovalev/news-api/pkg/helpers"
)

// -------- test fakes --------

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrUniqueViolation
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdatePartial(ctx context.Context, id int64, apply func(*entity.User) error) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	if err := apply(&cp); err != nil {
		return nil, err
	}
	f.users[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// -------- tests --------

func TestUserServiceCreateHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	u, err := svc.Create(context.Background(), CreateUserInput{
		Username: "ana",
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	require.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "longenough1", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "longenough1"))
	assert.False(t, helpers.CompareHashAndPassword(u.PasswordHash, "wrongpass1"))
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	_, err := svc.Create(context.Background(), CreateUserInput{Username: "ana", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateUserInput{Username: "bob", Email: "a@x.com", Password: "secret456"})
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestUserServiceGetNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testLogger())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServicePatchOnlySuppliedFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	created, err := svc.Create(context.Background(), CreateUserInput{Username: "ana", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	username := "ana2"
	patched, err := svc.Patch(context.Background(), created.ID, PatchUserInput{Username: &username})
	require.NoError(t, err)

	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "ana2", patched.Username)
	assert.Equal(t, "a@x.com", patched.Email)
	assert.Equal(t, created.PasswordHash, patched.PasswordHash)
}

func TestUserServicePatchRehashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	created, err := svc.Create(context.Background(), CreateUserInput{Username: "ana", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	password := "newsecret1"
	patched, err := svc.Patch(context.Background(), created.ID, PatchUserInput{Password: &password})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, patched.PasswordHash)
	assert.NotEqual(t, "newsecret1", patched.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(patched.PasswordHash, "newsecret1"))
}

func TestUserServicePatchNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testLogger())

	username := "ghost"
	_, err := svc.Patch(context.Background(), 99, PatchUserInput{Username: &username})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceDelete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	created, err := svc.Create(context.Background(), CreateUserInput{Username: "ana", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrUserNotFound)
}
