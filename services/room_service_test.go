package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestRoomUpdateStripsProtectedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := mustCreateRoom(t, db, "C-301", 2)

	updated, err := svc.Update(room.ID, map[string]interface{}{
		"price":             150.0,
		"roomBlock":         "C",
		"currentOccupancy":  9, // must be ignored
		"current_occupancy": 9, // must be ignored
		"version":           42,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "C", updated.RoomBlock)
	assert.Equal(t, 0, updated.CurrentOccupancy)
	assert.Equal(t, int64(0), updated.Version)
}

func TestRoomUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Update(9999, map[string]interface{}{"price": 10.0})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)
	alloc := NewAllocationService(db)
	requests := NewRoomRequestService(db)

	room := mustCreateRoom(t, db, "C-302", 2)
	s1 := mustCreateStudent(t, db, "alice")
	s2 := mustCreateStudent(t, db, "bob")

	_, err := alloc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)
	req, err := requests.Create(s2.ID, room.ID, 1)
	require.NoError(t, err)

	require.NoError(t, rooms.Delete(room.ID))

	// pending request is declined, not deleted
	var gotReq models.RoomRequest
	require.NoError(t, db.First(&gotReq, req.ID).Error)
	assert.Equal(t, models.RequestStatusDeclined, gotReq.Status)

	// no orphaned occupancy
	var count int64
	require.NoError(t, db.Model(&models.RoomAssignment{}).Where("room_id = ?", room.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = rooms.Get(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	hostel := models.Hostel{Name: "North Hostel"}
	require.NoError(t, db.Create(&hostel).Error)

	r1 := models.Room{HostelID: &hostel.ID, RoomNumber: "N-1", RoomBlock: "N", RoomFloor: "1", Capacity: 2}
	r2 := models.Room{HostelID: &hostel.ID, RoomNumber: "N-2", RoomBlock: "N", RoomFloor: "2", Capacity: 2}
	r3 := models.Room{RoomNumber: "X-1", RoomBlock: "X", RoomFloor: "1", Capacity: 2}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)
	require.NoError(t, db.Create(&r3).Error)

	byHostel, err := svc.List(RoomFilter{HostelID: hostel.ID})
	require.NoError(t, err)
	assert.Len(t, byHostel, 2)

	byFloor, err := svc.List(RoomFilter{HostelID: hostel.ID, Floor: "2"})
	require.NoError(t, err)
	require.Len(t, byFloor, 1)
	assert.Equal(t, "N-2", byFloor[0].RoomNumber)

	all, err := svc.List(RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStudentDeleteFreesBeds(t *testing.T) {
	db := newTestDB(t)
	students := NewStudentService(db)
	alloc := NewAllocationService(db)

	room := mustCreateRoom(t, db, "C-303", 1)
	s1 := mustCreateStudent(t, db, "alice")

	_, err := alloc.AssignStudent(room.ID, s1.ID, 0)
	require.NoError(t, err)

	got := reloadRoom(t, db, room.ID)
	require.Equal(t, 1, got.CurrentOccupancy)
	require.Equal(t, models.RoomStatusOccupied, got.Status)

	require.NoError(t, students.Delete(s1.ID))

	got = reloadRoom(t, db, room.ID)
	assert.Zero(t, got.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)
	assert.Empty(t, got.Assignments)
}

func TestStudentCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(db)

	student := models.Student{FullName: "Dana Lee", Email: "Dana@Test.Local"}
	require.NoError(t, svc.Create(&student, "secret123"))

	var got models.Student
	require.NoError(t, db.First(&got, student.ID).Error)
	assert.Equal(t, "dana@test.local", got.Email)
	assert.NotEqual(t, "secret123", got.Password)
	assert.NotEmpty(t, got.Password)
}
