package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestAssignUnassignKeepsOccupancyConsistent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "A-101", 3)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")
	s3 := mustCreateStudent(t, db, "carol")

	steps := []func() error{
		func() error { _, err := svc.AssignStudent(room.ID, s1.ID, 0); return err },
		func() error { _, err := svc.AssignStudent(room.ID, s2.ID, AnyBed); return err },
		func() error { _, err := svc.UnassignStudent(room.ID, s1.ID); return err },
		func() error { _, err := svc.AssignStudent(room.ID, s3.ID, 2); return err },
		func() error { _, err := svc.UnassignStudent(room.ID, s2.ID); return err },
	}

	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)

		got := reloadRoom(t, db, room.ID)
		assert.Equal(t, len(got.Assignments), got.CurrentOccupancy,
			"occupancy must equal assignment count after step %d", i)
	}
}

func TestAssignRefusedWhenFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "A-102", 1)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	_, err := svc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)

	_, err = svc.AssignStudent(room.ID, s2.ID, AnyBed)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	got := reloadRoom(t, db, room.ID)
	assert.Equal(t, 1, got.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestUnassignThenAssignRestoresPriorState(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "A-103", 2)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	_, err := svc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)
	_, err = svc.AssignStudent(room.ID, s2.ID, 1)
	require.NoError(t, err)

	before := reloadRoom(t, db, room.ID)

	_, err = svc.UnassignStudent(room.ID, s1.ID)
	require.NoError(t, err)
	_, err = svc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)

	after := reloadRoom(t, db, room.ID)
	assert.Equal(t, before.CurrentOccupancy, after.CurrentOccupancy)
	assert.Equal(t, before.Status, after.Status)

	beds := map[int]uint{}
	for _, a := range after.Assignments {
		beds[a.BedIndex] = a.StudentID
	}
	assert.Equal(t, s1.ID, beds[0])
	assert.Equal(t, s2.ID, beds[1])
}

func TestAssignRefusesOccupiedBedAndBadIndex(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "A-104", 2)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	_, err := svc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)

	_, err = svc.AssignStudent(room.ID, s2.ID, 0)
	assert.ErrorIs(t, err, ErrBedOccupied)

	_, err = svc.AssignStudent(room.ID, s2.ID, 5)
	assert.ErrorIs(t, err, ErrBedOutOfRange)

	_, err = svc.AssignStudent(room.ID, s1.ID, 1)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssignRefusedUnderMaintenance(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "A-105", 2)
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", models.RoomStatusUnderMaintenance).Error)
	s1 := mustCreateStudent(t, db, "alice")

	_, err := svc.AssignStudent(room.ID, s1.ID, 0)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestAllocateScenario(t *testing.T) {
	// Room R1 capacity=2, empty. S1 requests bed 0, admin allocates:
	// request approved AND S1 assigned in one operation. S2's request
	// for bed 0 is then refused.
	db := newTestDB(t)
	alloc := NewAllocationService(db)
	requests := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "R1", 2)
	s1 := mustCreateStudent(t, db, "s1")
	s2 := mustCreateStudent(t, db, "s2")

	req, err := requests.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, req.Status)

	decided, err := alloc.Allocate(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	got := reloadRoom(t, db, room.ID)
	assert.Equal(t, 1, got.CurrentOccupancy)
	require.Len(t, got.Assignments, 1)
	assert.Equal(t, s1.ID, got.Assignments[0].StudentID)
	assert.Equal(t, 0, got.Assignments[0].BedIndex)

	_, err = requests.Create(s2.ID, room.ID, 0)
	assert.ErrorIs(t, err, ErrBedOccupied)
}

func TestAllocateLeavesRequestPendingOnFailure(t *testing.T) {
	db := newTestDB(t)
	alloc := NewAllocationService(db)
	requests := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "R2", 2)
	s1 := mustCreateStudent(t, db, "s1")
	s2 := mustCreateStudent(t, db, "s2")

	req, err := requests.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)

	// bed 0 gets taken through the direct assign flow before the admin
	// allocates the request
	_, err = alloc.AssignStudent(room.ID, s2.ID, 0)
	require.NoError(t, err)

	_, err = alloc.Allocate(req.ID)
	require.ErrorIs(t, err, ErrBedOccupied)

	var got models.RoomRequest
	require.NoError(t, db.First(&got, req.ID).Error)
	assert.Equal(t, models.RequestStatusPending, got.Status, "failed allocate must roll back the approval")
}

func TestAllocateTerminalRequest(t *testing.T) {
	db := newTestDB(t)
	alloc := NewAllocationService(db)
	requests := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "R3", 1)
	s1 := mustCreateStudent(t, db, "s1")

	req, err := requests.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)

	_, err = requests.Decline(req.ID)
	require.NoError(t, err)

	_, err = alloc.Allocate(req.ID)
	assert.ErrorIs(t, err, ErrRequestTerminal)
}

func TestStaleRoomVersionConflicts(t *testing.T) {
	db := newTestDB(t)

	room := mustCreateRoom(t, db, "R4", 2)

	stale := reloadRoom(t, db, room.ID)

	// another writer bumps the room first
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("version", stale.Version+1).Error)

	err := bumpRoom(db, &stale, 1)
	assert.ErrorIs(t, err, ErrRoomConflict)
}

func TestReconcileRepairsDrift(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "R5", 2)
	s1 := mustCreateStudent(t, db, "s1")

	_, err := svc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)

	// simulate legacy data whose counter drifted from the rows
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{"current_occupancy": 7, "status": models.RoomStatusOccupied}).Error)

	result, err := svc.Reconcile(room.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 7, result.PreviousOccupancy)
	assert.Equal(t, 1, result.Occupancy)
	assert.Equal(t, models.RoomStatusAvailable, result.Status)

	got := reloadRoom(t, db, room.ID)
	assert.Equal(t, 1, got.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)

	// second pass is a no-op
	result, err = svc.Reconcile(room.ID)
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestUnassignNotAssigned(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "R6", 2)
	s1 := mustCreateStudent(t, db, "s1")

	_, err := svc.UnassignStudent(room.ID, s1.ID)
	assert.ErrorIs(t, err, ErrNotAssigned)
}
