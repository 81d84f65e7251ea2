package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bloghub/internal/config"
	"bloghub/internal/dto"
	"bloghub/internal/middleware"
	"bloghub/internal/models"
)

// confirmationTTL is how long an e-mail confirmation code stays valid.
const confirmationTTL = 2*time.Hour + 3*time.Minute

type AuthService struct {
	db   *gorm.DB
	cfg  *config.Config
	mail *EmailService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mail *EmailService) *AuthService {
	return &AuthService{db: db, cfg: cfg, mail: mail}
}

// Login verifies credentials and opens a new device session. Every
// failure mode collapses into ErrInvalidCredentials so the response
// does not leak which check tripped.
func (s *AuthService) Login(loginOrEmail, password, ip, deviceTitle string) (*dto.TokenPair, error) {
	var user models.User
	err := s.db.Where("login = ? OR email = ?", loginOrEmail, loginOrEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsRecoveryConfirmed || user.IsBanned {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	deviceID := uuid.New()
	pair, issuedAt, err := s.mintPair(user.ID, deviceID)
	if err != nil {
		return nil, err
	}

	device := models.Device{
		DeviceID:       deviceID,
		UserID:         user.ID,
		IP:             ip,
		Title:          deviceTitle,
		LastActiveDate: issuedAt,
	}
	if err := s.db.Create(&device).Error; err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rotates a refresh token. The presented token must match an
// active session exactly: same device, same user, same issue time as
// the session's lastActiveDate. Anything else means the token was
// already rotated out or the session is gone.
func (s *AuthService) Refresh(sess *middleware.RefreshSession) (*dto.TokenPair, error) {
	denied, err := s.isDenied(sess.Token)
	if err != nil {
		return nil, err
	}
	if denied {
		return nil, ErrInvalidToken
	}

	var device models.Device
	err = s.db.Where("device_id = ? AND user_id = ? AND last_active_date = ?",
		sess.DeviceID, sess.UserID, sess.IssuedAt).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	pair, issuedAt, err := s.mintPair(sess.UserID, sess.DeviceID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&device).Update("last_active_date", issuedAt).Error; err != nil {
		return nil, err
	}
	if err := s.deny(sess.Token); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout denylists the refresh token and tears down its device session.
func (s *AuthService) Logout(sess *middleware.RefreshSession) error {
	denied, err := s.isDenied(sess.Token)
	if err != nil {
		return err
	}
	if denied {
		return ErrInvalidToken
	}
	if err := s.deny(sess.Token); err != nil {
		return err
	}
	res := s.db.Where("device_id = ? AND user_id = ? AND last_active_date = ?",
		sess.DeviceID, sess.UserID, sess.IssuedAt).Delete(&models.Device{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidToken
	}
	return nil
}

// Register creates an unconfirmed user and mails a confirmation code.
func (s *AuthService) Register(login, email, password string) error {
	if err := s.checkUnique(login, email); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Login:                 login,
		Email:                 email,
		PasswordHash:          string(hash),
		ConfirmationCode:      uuid.New(),
		ConfirmationExpiresAt: time.Now().UTC().Add(confirmationTTL),
		IsEmailConfirmed:      false,
		IsRecoveryConfirmed:   true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}
	s.mail.SendConfirmation(email, user.ConfirmationCode.String())
	return nil
}

// ConfirmRegistration redeems a confirmation code. A code that is
// unknown, already used or past its expiry is rejected the same way.
func (s *AuthService) ConfirmRegistration(code uuid.UUID) error {
	var user models.User
	err := s.db.Where("confirmation_code = ?", code).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCodeInvalid
	}
	if err != nil {
		return err
	}
	if user.IsEmailConfirmed || time.Now().UTC().After(user.ConfirmationExpiresAt) {
		return ErrCodeInvalid
	}
	return s.db.Model(&user).Update("is_email_confirmed", true).Error
}

// ResendConfirmation issues a fresh code for a not-yet-confirmed user.
func (s *AuthService) ResendConfirmation(email string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEmailUnknown
	}
	if err != nil {
		return err
	}
	if user.IsEmailConfirmed {
		return ErrCodeInvalid
	}
	code := uuid.New()
	err = s.db.Model(&user).Updates(map[string]any{
		"confirmation_code":       code,
		"confirmation_expires_at": time.Now().UTC().Add(confirmationTTL),
	}).Error
	if err != nil {
		return err
	}
	s.mail.SendConfirmation(email, code.String())
	return nil
}

// RecoverPassword sends a recovery code when the e-mail is known and
// stays silent when it is not, so the endpoint cannot be used to probe
// which addresses are registered.
func (s *AuthService) RecoverPassword(email string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	code := uuid.New()
	err = s.db.Model(&user).Updates(map[string]any{
		"recovery_code":         code,
		"is_recovery_confirmed": false,
	}).Error
	if err != nil {
		return err
	}
	s.mail.SendPasswordRecovery(email, code.String())
	return nil
}

// SetNewPassword redeems a recovery code. An unknown code is treated as
// success for the same probing reason as RecoverPassword.
func (s *AuthService) SetNewPassword(recoveryCode uuid.UUID, newPassword string) error {
	var user models.User
	err := s.db.Where("recovery_code = ?", recoveryCode).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Updates(map[string]any{
		"password_hash":         string(hash),
		"recovery_code":         nil,
		"is_recovery_confirmed": true,
	}).Error
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(userID uuid.UUID) (*dto.MeResponse, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{Email: user.Email, Login: user.Login, UserID: user.ID}, nil
}

func (s *AuthService) checkUnique(login, email string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLoginTaken
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return nil
}

// mintPair signs a fresh access/refresh pair. The issue instant is
// truncated to whole seconds because it round-trips through the JWT
// iat claim, and the refresh flow compares it against the session's
// lastActiveDate for equality.
func (s *AuthService) mintPair(userID, deviceID uuid.UUID) (*dto.TokenPair, time.Time, error) {
	now := time.Now().UTC().Truncate(time.Second)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.JWTAccessExpiry).Unix(),
	})
	accessToken, err := access.SignedString([]byte(s.cfg.JWTAccessSecret))
	if err != nil {
		return nil, time.Time{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   userID.String(),
		"deviceId": deviceID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.JWTRefreshExpiry).Unix(),
	})
	refreshToken, err := refresh.SignedString([]byte(s.cfg.JWTRefreshSecret))
	if err != nil {
		return nil, time.Time{}, err
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, now, nil
}

func (s *AuthService) isDenied(token string) (bool, error) {
	var count int64
	err := s.db.Model(&models.DeniedToken{}).Where("token = ?", token).Count(&count).Error
	return count > 0, err
}

func (s *AuthService) deny(token string) error {
	err := s.db.Create(&models.DeniedToken{Token: token}).Error
	if err != nil {
		slog.Error("failed to denylist refresh token", "error", err.Error())
	}
	return err
}
