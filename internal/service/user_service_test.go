package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"userbook/internal/dto"
	"userbook/internal/models"
	"userbook/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*UserService, *repository.MemoryUserRepository) {
	repo := repository.NewMemoryUserRepository()
	return NewUserService(repo, zap.NewNop()), repo
}

// erroringRepo fails every operation with the injected error.
type erroringRepo struct {
	err error
}

func (r *erroringRepo) FindAll(ctx context.Context) ([]models.User, error) { return nil, r.err }
func (r *erroringRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, r.err
}
func (r *erroringRepo) Insert(ctx context.Context, user *models.User) error { return r.err }
func (r *erroringRepo) Update(ctx context.Context, user *models.User) error { return r.err }
func (r *erroringRepo) Delete(ctx context.Context, id uuid.UUID) error      { return r.err }

func TestCreateUser_SetsEqualTimestamps(t *testing.T) {
	s, _ := newTestService()

	user, err := s.CreateUser(context.Background(), dto.UserParams{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "a@example.com", user.Email)
	require.Equal(t, user.CreatedAt, user.UpdatedAt)

	got, err := s.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Username, got.Username)
	require.Equal(t, user.Email, got.Email)
}

func TestCreateUser_BlankFieldsRejected(t *testing.T) {
	s, _ := newTestService()

	_, err := s.CreateUser(context.Background(), dto.UserParams{Username: "", Email: ""})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "username")
	require.Contains(t, verr.Fields, "email")

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestGetUser_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_RefreshesUpdatedAt(t *testing.T) {
	s, _ := newTestService()

	user, err := s.CreateUser(context.Background(), dto.UserParams{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := s.UpdateUser(context.Background(), user.ID, dto.UserParams{Username: "alice2", Email: "a@example.com"})
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.True(t, updated.UpdatedAt.After(user.UpdatedAt))
	require.Equal(t, user.CreatedAt, updated.CreatedAt)

	got, err := s.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice2", got.Username)
}

func TestUpdateUser_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.UpdateUser(context.Background(), uuid.New(), dto.UserParams{Username: "x", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_ValidationLeavesRecordUnchanged(t *testing.T) {
	s, _ := newTestService()

	user, err := s.CreateUser(context.Background(), dto.UserParams{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = s.UpdateUser(context.Background(), user.ID, dto.UserParams{Username: "", Email: "a@example.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := s.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, user.UpdatedAt, got.UpdatedAt)
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestService()

	user, err := s.CreateUser(context.Background(), dto.UserParams{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(context.Background(), user.ID))

	_, err = s.GetUser(context.Background(), user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestDeleteUser_NotFound(t *testing.T) {
	s, _ := newTestService()

	err := s.DeleteUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestStoreErrorsPassThrough(t *testing.T) {
	storeErr := errors.New("pg down")
	s := NewUserService(&erroringRepo{err: storeErr}, zap.NewNop())

	_, err := s.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrUserNotFound)

	_, err = s.CreateUser(context.Background(), dto.UserParams{Username: "alice", Email: "a@example.com"})
	require.ErrorIs(t, err, storeErr)
}
