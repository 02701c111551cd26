package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/mock"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

// fixedID always hands out the same identifier.
type fixedID string

func (f fixedID) Generate() string { return string(f) }

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func ptr(s string) *string { return &s }

func newTestUserSvc(t *testing.T) (*userService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewUserService(repo, validators.NewPayloadValidator(validators.PasswordPolicy{}), fixedID("u-1"), 4, logger.Nop()).(*userService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func validUserPayload() models.UserPayload {
	return models.UserPayload{
		FirstName:    ptr("Joe"),
		LastName:     ptr("Smith"),
		EmailAddress: ptr("joe@smith.com"),
		Password:     ptr("joepassword"),
	}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestUserService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "u-1", user.UserID)
			assert.Equal(t, "Joe", user.FirstName)
			assert.Equal(t, "joe@smith.com", user.EmailAddress)
			assert.Equal(t, fixedNow, user.CreatedAt)
			assert.NotEqual(t, "joepassword", user.PasswordHash)
			assert.True(t, utils.ComparePassword("joepassword", user.PasswordHash))
			return user, nil
		})

	user, err := svc.RegisterUser(ctx, validUserPayload())
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestUserService_RegisterUser_ValidationFailsWithoutPersisting(t *testing.T) {
	svc, _ := newTestUserSvc(t) // no CreateUser expectation: any call fails the test

	_, err := svc.RegisterUser(context.Background(), models.UserPayload{})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email Required",
		"Password Required",
	}, vErr.Messages)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	violation := &store.ConstraintViolationError{Messages: []string{"The email you entered already exists"}}
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, violation)

	_, err := svc.RegisterUser(ctx, validUserPayload())

	var cErr *store.ConstraintViolationError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, violation.Messages, cErr.Messages)
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	users := []models.User{{UserID: "u-1"}, {UserID: "u-2"}}
	repo.EXPECT().ListUsers(ctx).Return(users, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	dbErr := errors.New("db down")
	repo.EXPECT().ListUsers(ctx).Return(nil, dbErr)

	_, err := svc.ListUsers(ctx)
	assert.ErrorIs(t, err, dbErr)
}
