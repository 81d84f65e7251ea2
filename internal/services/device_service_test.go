package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/models"
)

func seedDevice(t *testing.T, db *testDB, userID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	deviceID := uuid.New()
	err := db.db.Create(&models.Device{
		DeviceID:       deviceID,
		UserID:         userID,
		IP:             "127.0.0.1",
		Title:          title,
		LastActiveDate: time.Now().UTC().Truncate(time.Second),
	}).Error
	require.NoError(t, err)
	return deviceID
}

func TestListForUser(t *testing.T) {
	db := newTestDB(t)
	rig := &testDB{db: db}
	svc := NewDeviceService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	seedDevice(t, rig, alice.ID, "laptop")
	seedDevice(t, rig, alice.ID, "phone")
	seedDevice(t, rig, bob.ID, "tablet")

	devices, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestTerminateOthers(t *testing.T) {
	db := newTestDB(t)
	rig := &testDB{db: db}
	svc := NewDeviceService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	keep := seedDevice(t, rig, alice.ID, "laptop")
	seedDevice(t, rig, alice.ID, "phone")
	seedDevice(t, rig, alice.ID, "tablet")

	require.NoError(t, svc.TerminateOthers(alice.ID, keep))

	devices, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, keep, devices[0].DeviceID)
}

func TestTerminateChecksOwnership(t *testing.T) {
	db := newTestDB(t)
	rig := &testDB{db: db}
	svc := NewDeviceService(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com", "pw")
	bob := mustCreateUser(t, db, "bob", "bob@example.com", "pw")
	aliceDevice := seedDevice(t, rig, alice.ID, "laptop")

	// Someone else's session is 403, an unknown one is 404.
	assert.ErrorIs(t, svc.Terminate(aliceDevice, bob.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Terminate(uuid.New(), alice.ID), ErrNotFound)

	require.NoError(t, svc.Terminate(aliceDevice, alice.ID))
	devices, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, devices)
}
