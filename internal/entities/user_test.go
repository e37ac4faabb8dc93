package entities

import (
	"testing"

	"jetsetgo/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Name:     "Ada",
		Age:      intPtr(30),
		Email:    "ada@example.com",
		Phone:    "+39123456789",
		Password: "secret1",
	}

	testCases := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr bool
	}{
		{"valid", func(r *SignupRequest) {}, false},
		{"age zero is the minimum valid", func(r *SignupRequest) { r.Age = intPtr(0) }, false},
		{"password of exactly six chars", func(r *SignupRequest) { r.Password = "123456" }, false},
		{"missing name", func(r *SignupRequest) { r.Name = "" }, true},
		{"missing age", func(r *SignupRequest) { r.Age = nil }, true},
		{"negative age", func(r *SignupRequest) { r.Age = intPtr(-1) }, true},
		{"malformed email", func(r *SignupRequest) { r.Email = "not-an-email" }, true},
		{"missing phone", func(r *SignupRequest) { r.Phone = "" }, true},
		{"password of five chars", func(r *SignupRequest) { r.Password = "12345" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "ada@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nope", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "ada@example.com", Password: ""}).Validate())
}
