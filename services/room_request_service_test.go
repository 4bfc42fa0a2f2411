package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestRequestLifecycleIsTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "B-201", 2)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	req1, err := svc.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)

	approved, err := svc.Approve(req1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.DecidedAt)

	// approved is terminal: neither decision is accepted again
	_, err = svc.Approve(req1.ID)
	assert.ErrorIs(t, err, ErrRequestTerminal)
	_, err = svc.Decline(req1.ID)
	assert.ErrorIs(t, err, ErrRequestTerminal)

	req2, err := svc.Create(s2.ID, room.ID, 1)
	require.NoError(t, err)

	declined, err := svc.Decline(req2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusDeclined, declined.Status)

	_, err = svc.Approve(req2.ID)
	assert.ErrorIs(t, err, ErrRequestTerminal)
}

func TestApproveRefusesSecondApprovalForSameBed(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "B-202", 4)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	req1, err := svc.Create(s1.ID, room.ID, 2)
	require.NoError(t, err)
	req2, err := svc.Create(s2.ID, room.ID, 2)
	require.NoError(t, err)

	_, err = svc.Approve(req1.ID)
	require.NoError(t, err)

	_, err = svc.Approve(req2.ID)
	assert.ErrorIs(t, err, ErrBedOccupied, "at most one approved request per (room, bed)")
}

func TestCreateRequestPreconditions(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "B-203", 2)
	s1 := mustCreateStudent(t, db, "alice")

	_, err := svc.Create(s1.ID, room.ID, 5)
	assert.ErrorIs(t, err, ErrBedOutOfRange)

	_, err = svc.Create(s1.ID, 9999, 0)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Create(9999, room.ID, 0)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)

	// one live request per student per room
	_, err = svc.Create(s1.ID, room.ID, 1)
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", models.RoomStatusUnderMaintenance).Error)
	s2 := mustCreateStudent(t, db, "bob")
	_, err = svc.Create(s2.ID, room.ID, 1)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestListAllStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "B-204", 4)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	req1, err := svc.Create(s1.ID, room.ID, 0)
	require.NoError(t, err)
	_, err = svc.Create(s2.ID, room.ID, 1)
	require.NoError(t, err)

	_, err = svc.Decline(req1.ID)
	require.NoError(t, err)

	pending, err := svc.ListAll(models.RequestStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, s2.ID, pending[0].StudentID)

	all, err := svc.ListAll("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFilterRequests(t *testing.T) {
	fixture := []models.RoomRequest{
		{Status: models.RequestStatusPending, Student: models.Student{FullName: "Alice Johnson"}, Room: models.Room{RoomNumber: "A-101"}},
		{Status: models.RequestStatusPending, Student: models.Student{FullName: "Bob Smith"}, Room: models.Room{RoomNumber: "B-202"}},
		{Status: models.RequestStatusApproved, Student: models.Student{FullName: "Alice Johnson"}, Room: models.Room{RoomNumber: "C-303"}},
		{Status: models.RequestStatusDeclined, Student: models.Student{FullName: "Carol White"}, Room: models.Room{RoomNumber: "A-101"}},
	}

	// both predicates must hold
	got := FilterRequests(fixture, models.RequestStatusPending, "alice")
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Johnson", got[0].Student.FullName)
	assert.Equal(t, models.RequestStatusPending, got[0].Status)

	// search matches room number too
	got = FilterRequests(fixture, "", "a-101")
	assert.Len(t, got, 2)

	// status alone
	got = FilterRequests(fixture, models.RequestStatusPending, "")
	assert.Len(t, got, 2)

	// "all" and empty search pass everything
	got = FilterRequests(fixture, "all", "")
	assert.Len(t, got, 4)

	// no match
	got = FilterRequests(fixture, models.RequestStatusApproved, "bob")
	assert.Empty(t, got)
}
