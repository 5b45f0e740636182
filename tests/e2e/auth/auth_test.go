//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/dto/request"
	"hotelier/internal/handler/dto/response"
	"hotelier/tests/common/authtest"
	"hotelier/tests/common/dbtest"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleManager))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleReceptionist))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials log in",
			email:          "manager@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user is rejected",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          "manager@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user is rejected",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email is rejected",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password is rejected",
			email:          "manager@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
				require.NotEmpty(t, body.AccessToken)
				require.NotEmpty(t, body.RefreshToken)
				require.Equal(t, tt.email, body.User.Email)
			}
		})
	}
}

func (s *authSuite) TestRegisterAndMe() {
	s.Run("registered guest can log in and fetch itself", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Email: "new-guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "new-guest@example.com", "password123")

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, "new-guest@example.com", me["email"])
		require.Equal(t, "guest", me["role"])
	})

	s.Run("duplicate registration conflicts", func() {
		t := s.T()

		body := request.RegisterRequest{Email: "dupe@example.com", Password: "password123"}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("me requires a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh token yields a fresh pair", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "manager@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		var login response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &login))

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: login.RefreshToken}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshed response.TokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshed))
		require.NotEmpty(t, refreshed.AccessToken)
	})

	s.Run("garbage refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
