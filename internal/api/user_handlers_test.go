package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(req *entities.SignupRequest) (int, error) {
	args := m.Called(req)
	return args.Int(0), args.Error(1)
}

func (m *MockUserService) Login(req *entities.LoginRequest) (*entities.LoginResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LoginResponse), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(email string) (*entities.UserProfile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func signupPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Ada",
		"age":      30,
		"email":    "ada@example.com",
		"phone":    "+39123456789",
		"password": "secret1",
	}
}

func TestUserHandler_Signup_Created(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	svc.On("Register", mock.AnythingOfType("*entities.SignupRequest")).Return(7, nil).Once()

	w := postJSON(t, handler.Signup, "/api/signup", signupPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp entities.SignupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.ID)
	svc.AssertExpectations(t)
}

func TestUserHandler_Signup_ValidationFailure(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	payload := signupPayload()
	payload["age"] = -1
	w := postJSON(t, handler.Signup, "/api/signup", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything)
}

func TestUserHandler_Signup_Conflict(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	svc.On("Register", mock.AnythingOfType("*entities.SignupRequest")).
		Return(0, apperrors.ErrUserExists).Once()

	w := postJSON(t, handler.Signup, "/api/signup", signupPayload())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_Signup_StoreError(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	svc.On("Register", mock.AnythingOfType("*entities.SignupRequest")).
		Return(0, errors.New("pq: connection refused")).Once()

	w := postJSON(t, handler.Signup, "/api/signup", signupPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Store detail must not leak.
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestUserHandler_Login(t *testing.T) {
	testCases := []struct {
		name     string
		result   *entities.LoginResponse
		err      error
		wantCode int
	}{
		{
			name: "success",
			result: &entities.LoginResponse{
				UserID: 7, Name: "Ada", Age: 30, Email: "ada@example.com", Phone: "+39123456789",
			},
			wantCode: http.StatusOK,
		},
		{name: "unknown email", err: apperrors.ErrEmailNotFound, wantCode: http.StatusNotFound},
		{name: "wrong password", err: apperrors.ErrInvalidCredentials, wantCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockUserService{}
			handler := NewUserHandler(svc)
			svc.On("Login", mock.AnythingOfType("*entities.LoginRequest")).Return(tc.result, tc.err).Once()

			w := postJSON(t, handler.Login, "/api/login", map[string]string{
				"email":    "ada@example.com",
				"password": "secret1",
			})

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.result != nil {
				var resp entities.LoginResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tc.result, resp)
			}
		})
	}
}

func TestUserHandler_UserInfo(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	svc.On("GetUserByEmail", "ada@example.com").Return(&entities.UserProfile{
		Name: "Ada", Age: 30, Email: "ada@example.com", Phone: "+39123456789",
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/userinfo?email=ada@example.com", nil)
	w := httptest.NewRecorder()
	handler.UserInfo(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var profile entities.UserProfile
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ada", profile.Name)
}

func TestUserHandler_UserInfo_NotFound(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	svc.On("GetUserByEmail", "ghost@example.com").Return(nil, apperrors.ErrEmailNotFound).Once()

	req := httptest.NewRequest("GET", "/api/userinfo?email=ghost@example.com", nil)
	w := httptest.NewRecorder()
	handler.UserInfo(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_UserInfo_MissingEmail(t *testing.T) {
	svc := &MockUserService{}
	handler := NewUserHandler(svc)

	req := httptest.NewRequest("GET", "/api/userinfo", nil)
	w := httptest.NewRecorder()
	handler.UserInfo(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetUserByEmail", mock.Anything)
}
