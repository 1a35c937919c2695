package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/infras/jwt"
	"agenda/internal/domains/auth/model/dto"
	"agenda/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	name := "Dra. Ana Paula"
	req := dto.RegisterRequest{
		Email:    "ana@consultorio.com",
		Password: "plaintext",
		Name:     &name,
	}

	user := req.ToUserModel("guest", "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@consultorio.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleUser, user.Level)
	assert.True(t, user.Active)
}
