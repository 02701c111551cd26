package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "first_name", "last_name", "email_address", "password_hash", "created_at", "updated_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	user := models.User{
		UserID:       "u-1",
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.FirstName, user.LastName, user.EmailAddress, user.PasswordHash, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_address_key"})

	_, err := repo.CreateUser(context.Background(), models.User{EmailAddress: "joe@smith.com"})

	var cErr *ConstraintViolationError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, []string{"The email you entered already exists"}, cErr.Messages)
}

func TestCreateUser_NotNullViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "first_name"})

	_, err := repo.CreateUser(context.Background(), models.User{})

	var cErr *ConstraintViolationError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, []string{"First name is required"}, cErr.Messages)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var cErr *ConstraintViolationError
	assert.False(t, errors.As(err, &cErr))
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u-1", "Joe", "Smith", "joe@smith.com", "hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email_address = \\$1").
		WithArgs("joe@smith.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "joe@smith.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, "Smith", found.LastName)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindUserByEmail(context.Background(), "joe@smith.com")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u-1", "Joe", "Smith", "joe@smith.com", "hash", now, now))

	found, err := repo.FindUserByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "joe@smith.com", found.EmailAddress)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u-1"))

	_, err := repo.FindUserByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at, user_id").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u-1", "Joe", "Smith", "joe@smith.com", "h1", now, now).
			AddRow("u-2", "Sally", "Jones", "sally@jones.com", "h2", now, now))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-1", users[0].UserID)
	assert.Equal(t, "u-2", users[1].UserID)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u-1", "Joe", "Smith", "joe@smith.com", "h1", now, now).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
