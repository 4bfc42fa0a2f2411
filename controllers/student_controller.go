package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type StudentController struct {
	Students *services.StudentService
}

func NewStudentController(svc *services.StudentService) *StudentController {
	return &StudentController{Students: svc}
}

type createStudentPayload struct {
	FullName  string `json:"fullName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	RegNumber string `json:"regNumber"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Course    string `json:"course"`
}

// ListStudents (GET /api/student)
func (ctrl *StudentController) ListStudents(c *gin.Context) {
	students, err := ctrl.Students.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, students)
}

// GetStudent (GET /api/student/:id)
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	student, err := ctrl.Students.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

// CreateStudent (POST /api/student)
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var payload createStudentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "fullName, email and password are required")
		return
	}

	student := models.Student{
		FullName:  payload.FullName,
		Email:     payload.Email,
		RegNumber: payload.RegNumber,
		Phone:     payload.Phone,
		Gender:    payload.Gender,
		Course:    payload.Course,
	}

	if err := ctrl.Students.Create(&student, payload.Password); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, student)
}

// UpdateStudent (PUT /api/student/:id)
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	student, err := ctrl.Students.Update(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

// DeleteStudent (DELETE /api/student/:id)
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Students.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
