package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
)

func newAuthService(t *testing.T) (*AuthService, *testDB) {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg, NewEmailService(cfg))
	return svc, &testDB{db: db, cfg: cfg}
}

func TestRegisterAndConfirm(t *testing.T) {
	svc, rig := newAuthService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password1"))

	var user models.User
	require.NoError(t, rig.db.First(&user, "login = ?", "alice").Error)
	assert.False(t, user.IsEmailConfirmed)
	assert.WithinDuration(t, time.Now().UTC().Add(confirmationTTL), user.ConfirmationExpiresAt, time.Minute)

	require.NoError(t, svc.ConfirmRegistration(user.ConfirmationCode))

	pair, err := svc.Login("alice", "password1", "127.0.0.1", "test agent")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Spending the code twice fails.
	assert.ErrorIs(t, svc.ConfirmRegistration(user.ConfirmationCode), ErrCodeInvalid)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password1"))
	assert.ErrorIs(t, svc.Register("alice", "other@example.com", "password1"), ErrLoginTaken)
	assert.ErrorIs(t, svc.Register("bob", "alice@example.com", "password1"), ErrEmailTaken)
}

func TestConfirmExpiredCode(t *testing.T) {
	svc, rig := newAuthService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password1"))
	var user models.User
	require.NoError(t, rig.db.First(&user, "login = ?", "alice").Error)

	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, rig.db.Model(&user).Update("confirmation_expires_at", past).Error)

	assert.ErrorIs(t, svc.ConfirmRegistration(user.ConfirmationCode), ErrCodeInvalid)
}

func TestLoginFailures(t *testing.T) {
	svc, rig := newAuthService(t)
	user := mustCreateUser(t, rig.db, "alice", "alice@example.com", "password1")

	_, err := svc.Login("nobody", "password1", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("alice", "wrongpass", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Pending password recovery blocks login until the new password
	// lands.
	require.NoError(t, rig.db.Model(user).Update("is_recovery_confirmed", false).Error)
	_, err = svc.Login("alice", "password1", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.NoError(t, rig.db.Model(user).Update("is_recovery_confirmed", true).Error)

	// Banned users cannot log in.
	require.NoError(t, rig.db.Model(user).Update("is_banned", true).Error)
	_, err = svc.Login("alice", "password1", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginCreatesDeviceSession(t *testing.T) {
	svc, rig := newAuthService(t)
	user := mustCreateUser(t, rig.db, "alice", "alice@example.com", "password1")

	pair, err := svc.Login("alice@example.com", "password1", "10.0.0.7", "Firefox")
	require.NoError(t, err)

	sess, err := middleware.ParseRefreshToken(pair.RefreshToken, rig.cfg.JWTRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)

	var device models.Device
	require.NoError(t, rig.db.First(&device, "user_id = ?", user.ID).Error)
	assert.Equal(t, sess.DeviceID, device.DeviceID)
	assert.Equal(t, "10.0.0.7", device.IP)
	assert.Equal(t, "Firefox", device.Title)
	assert.True(t, sess.IssuedAt.Equal(device.LastActiveDate))
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, rig := newAuthService(t)
	mustCreateUser(t, rig.db, "alice", "alice@example.com", "password1")

	pair, err := svc.Login("alice", "password1", "ip", "agent")
	require.NoError(t, err)
	sess, err := middleware.ParseRefreshToken(pair.RefreshToken, rig.cfg.JWTRefreshSecret)
	require.NoError(t, err)

	// Issue timestamps have second precision; make sure rotation lands
	// on a new iat.
	time.Sleep(1100 * time.Millisecond)

	rotated, err := svc.Refresh(sess)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The old token is dead for both refresh and logout.
	_, err = svc.Refresh(sess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(sess), ErrInvalidToken)

	// The rotated token still works.
	newSess, err := middleware.ParseRefreshToken(rotated.RefreshToken, rig.cfg.JWTRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, sess.DeviceID, newSess.DeviceID)
	require.NoError(t, svc.Logout(newSess))
}

func TestLogoutRemovesDevice(t *testing.T) {
	svc, rig := newAuthService(t)
	user := mustCreateUser(t, rig.db, "alice", "alice@example.com", "password1")

	pair, err := svc.Login("alice", "password1", "ip", "agent")
	require.NoError(t, err)
	sess, err := middleware.ParseRefreshToken(pair.RefreshToken, rig.cfg.JWTRefreshSecret)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(sess))

	var count int64
	require.NoError(t, rig.db.Model(&models.Device{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Replaying the same token is rejected.
	assert.ErrorIs(t, svc.Logout(sess), ErrInvalidToken)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	svc, rig := newAuthService(t)
	user := mustCreateUser(t, rig.db, "alice", "alice@example.com", "oldpassword")

	// Unknown address is silently accepted.
	require.NoError(t, svc.RecoverPassword("stranger@example.com"))

	require.NoError(t, svc.RecoverPassword("alice@example.com"))
	require.NoError(t, rig.db.First(user, "id = ?", user.ID).Error)
	require.NotNil(t, user.RecoveryCode)
	assert.False(t, user.IsRecoveryConfirmed)

	// Login is blocked while the recovery is pending.
	_, err := svc.Login("alice", "oldpassword", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.SetNewPassword(*user.RecoveryCode, "newpassword"))

	_, err = svc.Login("alice", "oldpassword", "ip", "agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	pair, err := svc.Login("alice", "newpassword", "ip", "agent")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestResendConfirmation(t *testing.T) {
	svc, rig := newAuthService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password1"))
	var before models.User
	require.NoError(t, rig.db.First(&before, "login = ?", "alice").Error)

	require.NoError(t, svc.ResendConfirmation("alice@example.com"))
	var after models.User
	require.NoError(t, rig.db.First(&after, "login = ?", "alice").Error)
	assert.NotEqual(t, before.ConfirmationCode, after.ConfirmationCode)

	// Old code no longer works, new one does.
	assert.ErrorIs(t, svc.ConfirmRegistration(before.ConfirmationCode), ErrCodeInvalid)
	require.NoError(t, svc.ConfirmRegistration(after.ConfirmationCode))

	// Resending to a confirmed account or unknown address fails.
	assert.ErrorIs(t, svc.ResendConfirmation("alice@example.com"), ErrCodeInvalid)
	assert.ErrorIs(t, svc.ResendConfirmation("stranger@example.com"), ErrEmailUnknown)
}

func TestMe(t *testing.T) {
	svc, rig := newAuthService(t)
	user := mustCreateUser(t, rig.db, "alice", "alice@example.com", "password1")

	me, err := svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Login)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, user.ID, me.UserID)
}
