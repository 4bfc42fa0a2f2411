package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/models"
	"hostel-backend/routes"
	"hostel-backend/services"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateAndSeed(db))
	config.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		FullName: "Test Admin",
		Username: "admin@hostel.local",
		Password: string(hash),
	}).Error)

	return routes.SetupRouter(
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewAllocationController(services.NewAllocationService(db)),
		controllers.NewRoomRequestController(services.NewRoomRequestService(db)),
		controllers.NewHostelController(services.NewHostelService(db)),
		controllers.NewStudentController(services.NewStudentService(db)),
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin@hostel.local",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestHealth(t *testing.T) {
	router := setupAPI(t)

	w, body := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupAPI(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/hostel", "", gin.H{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = doJSON(t, router, http.MethodPost, "/api/hostel", "not-a-token", gin.H{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoomRequestFlow(t *testing.T) {
	router := setupAPI(t)
	admin := loginAdmin(t, router)

	// admin creates a room
	w, body := doJSON(t, router, http.MethodPost, "/api/room", admin, gin.H{
		"roomNumber": "A-101",
		"capacity":   2,
		"price":      120,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	roomID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	// admin registers a student
	w, _ = doJSON(t, router, http.MethodPost, "/api/student", admin, gin.H{
		"fullName": "Alice Johnson",
		"email":    "alice@test.local",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// student logs in and requests bed 0
	w, body = doJSON(t, router, http.MethodPost, "/api/auth/student/login", "", gin.H{
		"email":    "alice@test.local",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	student := body["data"].(map[string]interface{})["token"].(string)

	w, body = doJSON(t, router, http.MethodPost, "/api/room/requests", student, gin.H{
		"roomId": roomID,
		"bed":    0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := uint(body["data"].(map[string]interface{})["id"].(float64))

	// a student cannot use admin request routes
	w, _ = doJSON(t, router, http.MethodGet, "/api/room/requests", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin sees the pending request
	w, body = doJSON(t, router, http.MethodGet, "/api/room/requests?status=pending", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["requests"], 1)

	// atomic allocate: approve + assign in one call
	w, body = doJSON(t, router, http.MethodPost, "/api/room/allocate", admin, gin.H{
		"requestId": requestID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", body["data"].(map[string]interface{})["status"])

	// room reflects the assignment
	w, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/room/%d", roomID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	room := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), room["currentOccupancy"])

	// allocating a decided request is a conflict
	w, body = doJSON(t, router, http.MethodPost, "/api/room/allocate", admin, gin.H{
		"requestId": requestID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "request_already_decided", body["error"])

	// student sees their own (now approved) request
	w, body = doJSON(t, router, http.MethodGet, "/api/room/my-requests", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["requests"], 1)
}

func TestAssignConflictSurfacesAsConflict(t *testing.T) {
	router := setupAPI(t)
	admin := loginAdmin(t, router)

	w, body := doJSON(t, router, http.MethodPost, "/api/room", admin, gin.H{
		"roomNumber": "B-1",
		"capacity":   1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	roomID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	for i, name := range []string{"s1", "s2"} {
		w, _ = doJSON(t, router, http.MethodPost, "/api/student", admin, gin.H{
			"fullName": name,
			"email":    fmt.Sprintf("%s@test.local", name),
			"password": "secret123",
		})
		require.Equal(t, http.StatusCreated, w.Code, "student %d", i)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/room/assign", admin, gin.H{
		"roomId":    roomID,
		"studentId": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// room is full now
	w, body = doJSON(t, router, http.MethodPost, "/api/room/assign", admin, gin.H{
		"roomId":    roomID,
		"studentId": 2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "capacity_exceeded", body["error"])
}

func TestPublicContentEndpoints(t *testing.T) {
	router := setupAPI(t)

	w, body := doJSON(t, router, http.MethodGet, "/api/content/hero", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	w, body = doJSON(t, router, http.MethodPost, "/api/contact", "", gin.H{
		"name":  "Visitor",
		"email": "visitor@example.com",
		"body":  "When do applications open?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])

	// donation returns a generated receipt reference
	w, body = doJSON(t, router, http.MethodPost, "/api/donation", "", gin.H{
		"donorName": "Generous Person",
		"amount":    50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ref := body["data"].(map[string]interface{})["receiptRef"].(string)
	assert.Contains(t, ref, "DN-")
}
