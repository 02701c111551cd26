package http

import (
	"context"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/models"
)

// Func-field fakes of the service interfaces. A nil func returns zero values.

type mockAuthService struct {
	authenticateFn func(ctx context.Context, authHeader string) (models.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, authHeader string) (models.User, error) {
	if m.authenticateFn == nil {
		return models.User{}, service.ErrAuthorizationHeaderMissing
	}
	return m.authenticateFn(ctx, authHeader)
}

type mockUserService struct {
	listUsersFn    func(ctx context.Context) ([]models.User, error)
	registerUserFn func(ctx context.Context, payload models.UserPayload) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn == nil {
		return []models.User{}, nil
	}
	return m.listUsersFn(ctx)
}

func (m *mockUserService) RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, nil
	}
	return m.registerUserFn(ctx, payload)
}

type mockCourseService struct {
	listCoursesFn  func(ctx context.Context) ([]models.Course, error)
	getCourseFn    func(ctx context.Context, courseID string) (models.Course, error)
	createCourseFn func(ctx context.Context, owner models.User, payload models.CoursePayload) (models.Course, error)
	updateCourseFn func(ctx context.Context, principal models.User, courseID string, payload models.CoursePayload) (models.Course, error)
	deleteCourseFn func(ctx context.Context, principal models.User, courseID string) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if m.listCoursesFn == nil {
		return []models.Course{}, nil
	}
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, courseID string) (models.Course, error) {
	if m.getCourseFn == nil {
		return models.Course{CourseID: courseID}, nil
	}
	return m.getCourseFn(ctx, courseID)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, owner models.User, payload models.CoursePayload) (models.Course, error) {
	if m.createCourseFn == nil {
		return models.Course{}, nil
	}
	return m.createCourseFn(ctx, owner, payload)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, principal models.User, courseID string, payload models.CoursePayload) (models.Course, error) {
	if m.updateCourseFn == nil {
		return models.Course{}, nil
	}
	return m.updateCourseFn(ctx, principal, courseID, payload)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, principal models.User, courseID string) error {
	if m.deleteCourseFn == nil {
		return nil
	}
	return m.deleteCourseFn(ctx, principal, courseID)
}

type mockAppInfoService struct {
	version string
	pingErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Ping(_ context.Context) error {
	return m.pingErr
}

// newTestHandler fills unset services with default fakes.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.CourseService == nil {
		svcs.CourseService = &mockCourseService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, 0, logger.Nop())
}

var joe = models.User{
	UserID:       "user-joe",
	FirstName:    "Joe",
	LastName:     "Smith",
	EmailAddress: "joe@smith.com",
}

// authAs accepts every request as principal.
func authAs(principal models.User) *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return principal, nil
		},
	}
}
