package dto

import "github.com/google/uuid"

type LoginRequest struct {
	LoginOrEmail string `json:"loginOrEmail" validate:"required,notblank"`
	Password     string `json:"password" validate:"required,notblank"`
}

type RegistrationRequest struct {
	Login    string `json:"login" validate:"required,notblank,min=3,max=10"`
	Password string `json:"password" validate:"required,notblank,min=6,max=20"`
	Email    string `json:"email" validate:"required,email"`
}

type ConfirmationCodeRequest struct {
	Code string `json:"code" validate:"required,uuid"`
}

type EmailResendingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordRecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewPasswordRequest struct {
	NewPassword  string `json:"newPassword" validate:"required,notblank,min=6,max=20"`
	RecoveryCode string `json:"recoveryCode" validate:"required"`
}

// TokenPair is what the auth service mints; only the access token goes
// in the response body, the refresh token rides the cookie.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type MeResponse struct {
	Email  string    `json:"email"`
	Login  string    `json:"login"`
	UserID uuid.UUID `json:"userId"`
}
