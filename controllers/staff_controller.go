package controllers

import (
	"net/http"

	"hostal-backend/models"
	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	StaffSvc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{StaffSvc: svc}
}

type createStaffRequest struct {
	FullName string `json:"nombre"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"rol"`
	Shift    string `json:"turno"`
}

// GetStaff (GET /api/encargados)
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	staff, err := ctrl.StaffSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff (POST /api/encargados) — explicit provisioning; the password
// is hashed at creation time.
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	staff := models.Staff{
		FullName: req.FullName,
		Username: req.Username,
		Role:     req.Role,
		Shift:    req.Shift,
	}
	if err := ctrl.StaffSvc.Create(&staff, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// DeleteStaff (DELETE /api/encargados/:id)
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.StaffSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Encargado eliminado")
}
