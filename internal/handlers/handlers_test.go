package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	handlermocks "github.com/aldisptr/backoffice-api/internal/mock/handlers"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performJSONRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil
	}

	defer resp.Body.Close()
	rawBody, _ := io.ReadAll(resp.Body)
	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody
}

type AuthLoginHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthLoginService
	handler *AuthLoginHandler
	app     *fiber.App
}

func (s *AuthLoginHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthLoginService(s.T())
	s.handler = NewAuthLoginHandler(s.service, newTestLogger())
	s.app = fiber.New()
	s.app.Post("/auth/login", s.handler.Handle)
}

func (s *AuthLoginHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("service error")

	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{}, []byte)
	}{
		{
			name: "invalid body",
			body: []byte(`{"username":`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name: "missing username or password",
			body: []byte(`{"username":"","password":""}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "username and password are required", payload["error"])
			},
		},
		{
			name: "invalid credentials",
			body: []byte(`{"username":"jdoe","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					Login(mock.Anything, "jdoe", "secret").
					Return(vo.AuthLogin{}, vo.ErrInvalidCredentials)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid username or password", payload["error"])
			},
		},
		{
			name: "directory unavailable",
			body: []byte(`{"username":"jdoe","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					Login(mock.Anything, "jdoe", "secret").
					Return(vo.AuthLogin{}, vo.ErrDependencyUnavailable)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusServiceUnavailable, resp.StatusCode)
				assert.Equal(s.T(), "authentication service unavailable", payload["error"])
			},
		},
		{
			name: "internal error",
			body: []byte(`{"username":"jdoe","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					Login(mock.Anything, "jdoe", "secret").
					Return(vo.AuthLogin{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name: "success",
			body: []byte(`{"username":"jdoe","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					Login(mock.Anything, "jdoe", "secret").
					Return(vo.AuthLogin{AccessToken: "token-123", TokenType: "Bearer", ExpiresIn: 900}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "token-123", payload["access_token"])
				assert.Equal(s.T(), "Bearer", payload["token_type"])
				assert.Equal(s.T(), float64(900), payload["expires_in"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, raw := performJSONRequest(s.app, http.MethodPost, "/auth/login", tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload, raw)
		})
	}
}

func TestAuthLoginHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthLoginHandlerSuite))
}

type AuthLogoutHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthLogoutService
	handler *AuthLogoutHandler
	app     *fiber.App
}

func (s *AuthLogoutHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthLogoutService(s.T())
	s.handler = NewAuthLogoutHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *AuthLogoutHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("service error")
	claims := &sharedjwt.Claims{Subject: "op-1", ID: "token-1", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name      string
		claims    *sharedjwt.Claims
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing authenticated user",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing authenticated user", payload["error"])
			},
		},
		{
			name:   "token not revocable",
			claims: claims,
			setupMock: func() {
				s.service.EXPECT().Logout(mock.Anything, claims).Return(vo.ErrTokenNotRevocable)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "token cannot be revoked", payload["error"])
			},
		},
		{
			name:   "internal error",
			claims: claims,
			setupMock: func() {
				s.service.EXPECT().Logout(mock.Anything, claims).Return(serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name:   "success",
			claims: claims,
			setupMock: func() {
				s.service.EXPECT().Logout(mock.Anything, claims).Return(nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "ok", payload["status"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Post("/auth/logout", func(c fiber.Ctx) error {
				if tc.claims != nil {
					c.SetContext(sharedjwt.SetClaims(c.Context(), tc.claims))
				}
				return s.handler.Handle(c)
			})
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/auth/logout", nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestAuthLogoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthLogoutHandlerSuite))
}

type DirectoryLookupHandlerSuite struct {
	suite.Suite

	service *handlermocks.DirectoryLookupService
	handler *DirectoryLookupHandler
	app     *fiber.App
}

func (s *DirectoryLookupHandlerSuite) SetupTest() {
	s.service = handlermocks.NewDirectoryLookupService(s.T())
	s.handler = NewDirectoryLookupHandler(s.service, newTestLogger())
	s.app = fiber.New()
	s.app.Get("/directory/users/:username", s.handler.Handle)
}

func (s *DirectoryLookupHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("service error")

	tests := []struct {
		name      string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "directory user not found",
			path: "/directory/users/jdoe",
			setupMock: func() {
				s.service.EXPECT().
					LookupUser(mock.Anything, "jdoe").
					Return(vo.DirectoryUser{}, vo.ErrDirectoryUserNotFound)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
				assert.Equal(s.T(), "directory user not found", payload["error"])
			},
		},
		{
			name: "invalid lookup request",
			path: "/directory/users/jdoe",
			setupMock: func() {
				s.service.EXPECT().
					LookupUser(mock.Anything, "jdoe").
					Return(vo.DirectoryUser{}, directory.ErrInvalidFilter)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid lookup request", payload["error"])
			},
		},
		{
			name: "directory unavailable",
			path: "/directory/users/jdoe",
			setupMock: func() {
				s.service.EXPECT().
					LookupUser(mock.Anything, "jdoe").
					Return(vo.DirectoryUser{}, vo.ErrDependencyUnavailable)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusServiceUnavailable, resp.StatusCode)
				assert.Equal(s.T(), "directory unavailable", payload["error"])
			},
		},
		{
			name: "internal error",
			path: "/directory/users/jdoe",
			setupMock: func() {
				s.service.EXPECT().
					LookupUser(mock.Anything, "jdoe").
					Return(vo.DirectoryUser{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name: "success",
			path: "/directory/users/jdoe",
			setupMock: func() {
				s.service.EXPECT().
					LookupUser(mock.Anything, "jdoe").
					Return(vo.DirectoryUser{
						Username:    "jdoe",
						DN:          "uid=jdoe,ou=people,dc=example,dc=org",
						DisplayName: "John Doe",
						Email:       "jdoe@example.org",
						Groups:      []string{"cn=ops,ou=groups,dc=example,dc=org"},
					}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "jdoe", payload["username"])
				assert.Equal(s.T(), "uid=jdoe,ou=people,dc=example,dc=org", payload["dn"])
				assert.Equal(s.T(), "John Doe", payload["display_name"])
				assert.Equal(s.T(), "jdoe@example.org", payload["email"])
				assert.Equal(s.T(), []interface{}{"cn=ops,ou=groups,dc=example,dc=org"}, payload["groups"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestDirectoryLookupHandlerSuite(t *testing.T) {
	suite.Run(t, new(DirectoryLookupHandlerSuite))
}

type UsersCreateHandlerSuite struct {
	suite.Suite

	service *handlermocks.UsersCreateService
	handler *UsersCreateHandler
	app     *fiber.App
}

func (s *UsersCreateHandlerSuite) SetupTest() {
	s.service = handlermocks.NewUsersCreateService(s.T())
	s.handler = NewUsersCreateHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *UsersCreateHandlerSuite) TestHandle_TableDriven() {
	now := time.Now().UTC()
	serviceErr := errors.New("service error")

	tests := []struct {
		name      string
		actorID   string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:    "missing authenticated user",
			actorID: "",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","password":"super-secret"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing authenticated user", payload["error"])
			},
		},
		{
			name:    "invalid request body",
			actorID: "admin-1",
			body:    []byte(`{"email":`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name:    "missing required fields",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"","password":"super-secret"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "email, full_name and password are required", payload["error"])
			},
		},
		{
			name:    "invalid email",
			actorID: "admin-1",
			body:    []byte(`{"email":"not-an-email","full_name":"New Operator","role":"operator","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "not-an-email", "New Operator", "operator", "super-secret").
					Return(vo.OperatorAccount{}, vo.ErrInvalidOperatorEmail)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "email is invalid", payload["error"])
			},
		},
		{
			name:    "invalid role",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","role":"root","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "root", "super-secret").
					Return(vo.OperatorAccount{}, vo.ErrInvalidOperatorRole)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "role must be one of admin, operator, viewer", payload["error"])
			},
		},
		{
			name:    "weak password",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","role":"operator","password":"short"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "operator", "short").
					Return(vo.OperatorAccount{}, vo.ErrWeakPassword)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "password must be at least 8 characters", payload["error"])
			},
		},
		{
			name:    "email already used",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","role":"operator","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "operator", "super-secret").
					Return(vo.OperatorAccount{}, vo.ErrEmailAlreadyUsed)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "email already used", payload["error"])
			},
		},
		{
			name:    "internal error",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","role":"operator","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "operator", "super-secret").
					Return(vo.OperatorAccount{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name:    "defaults role to operator",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "operator", "super-secret").
					Return(vo.OperatorAccount{
						ID:        "3f1f6fd4-9c1d-4f5e-8a51-6a1f0f6f3c21",
						Email:     "new@example.com",
						FullName:  "New Operator",
						Role:      "operator",
						Status:    "active",
						CreatedAt: now,
					}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "operator", payload["role"])
			},
		},
		{
			name:    "success",
			actorID: "admin-1",
			body:    []byte(`{"email":"new@example.com","full_name":"New Operator","role":"viewer","password":"super-secret"}`),
			setupMock: func() {
				s.service.EXPECT().
					CreateOperator(mock.Anything, "admin-1", "new@example.com", "New Operator", "viewer", "super-secret").
					Return(vo.OperatorAccount{
						ID:        "3f1f6fd4-9c1d-4f5e-8a51-6a1f0f6f3c21",
						Email:     "new@example.com",
						FullName:  "New Operator",
						Role:      "viewer",
						Status:    "active",
						CreatedAt: now,
					}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "3f1f6fd4-9c1d-4f5e-8a51-6a1f0f6f3c21", payload["id"])
				assert.Equal(s.T(), "new@example.com", payload["email"])
				assert.Equal(s.T(), "New Operator", payload["full_name"])
				assert.Equal(s.T(), "viewer", payload["role"])
				assert.Equal(s.T(), "active", payload["status"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Post("/admin/users", func(c fiber.Ctx) error {
				if tc.actorID != "" {
					c.Locals("user_id", tc.actorID)
				}
				return s.handler.Handle(c)
			})
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/admin/users", tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestUsersCreateHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersCreateHandlerSuite))
}

type UsersGetHandlerSuite struct {
	suite.Suite

	service *handlermocks.UsersGetService
	handler *UsersGetHandler
	app     *fiber.App
}

func (s *UsersGetHandlerSuite) SetupTest() {
	s.service = handlermocks.NewUsersGetService(s.T())
	s.handler = NewUsersGetHandler(s.service, newTestLogger())
	s.app = fiber.New()
	s.app.Get("/admin/users/:id", s.handler.Handle)
}

func (s *UsersGetHandlerSuite) TestHandle_TableDriven() {
	now := time.Now().UTC()
	serviceErr := errors.New("service error")
	accountID := "3f1f6fd4-9c1d-4f5e-8a51-6a1f0f6f3c21"

	tests := []struct {
		name      string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "invalid operator id",
			path: "/admin/users/not-a-uuid",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid operator id", payload["error"])
			},
		},
		{
			name: "operator not found",
			path: "/admin/users/" + accountID,
			setupMock: func() {
				s.service.EXPECT().
					GetOperator(mock.Anything, accountID).
					Return(vo.OperatorAccount{}, vo.ErrOperatorNotFound)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
				assert.Equal(s.T(), "operator not found", payload["error"])
			},
		},
		{
			name: "internal error",
			path: "/admin/users/" + accountID,
			setupMock: func() {
				s.service.EXPECT().
					GetOperator(mock.Anything, accountID).
					Return(vo.OperatorAccount{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name: "success",
			path: "/admin/users/" + accountID,
			setupMock: func() {
				s.service.EXPECT().
					GetOperator(mock.Anything, accountID).
					Return(vo.OperatorAccount{
						ID:        accountID,
						Email:     "ops@example.com",
						FullName:  "Ops One",
						Role:      "admin",
						Status:    "active",
						CreatedAt: now,
					}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), accountID, payload["id"])
				assert.Equal(s.T(), "ops@example.com", payload["email"])
				assert.Equal(s.T(), "Ops One", payload["full_name"])
				assert.Equal(s.T(), "admin", payload["role"])
				assert.Equal(s.T(), "active", payload["status"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestUsersGetHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersGetHandlerSuite))
}
