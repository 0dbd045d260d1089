package controllers

import (
	"log"
	"net/http"
	"time"

	"hostal-backend/models"
	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReservationRequest is the create/update payload. Dates accept DD/MM/YYYY
// and YYYY-MM-DD.
type ReservationRequest struct {
	RoomID      uint    `json:"nhabitacion_id" binding:"required"`
	Manager     string  `json:"encargado"`
	FirstName   string  `json:"nombre" binding:"required"`
	LastName    string  `json:"apellido"`
	People      int     `json:"personas"`
	CheckIn     string  `json:"fecha_ingreso" binding:"required"`
	CheckOut    string  `json:"fecha_egreso" binding:"required"`
	TotalAmount float64 `json:"monto_total"`
	Deposit     float64 `json:"senia"`
	RoomsCount  int     `json:"cantidad_habitaciones"`
	Phone       string  `json:"telefono"`
	GlutenFree  bool    `json:"celiacos"`
	Notes       string  `json:"observaciones"`
	Source      string  `json:"origen"`
}

func (req ReservationRequest) toModel() (*models.Reservation, error) {
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, services.NewValidationError(err.Error(), "fecha_ingreso")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, services.NewValidationError(err.Error(), "fecha_egreso")
	}

	people := req.People
	if people == 0 {
		people = 1
	}
	roomsCount := req.RoomsCount
	if roomsCount == 0 {
		roomsCount = 1
	}

	return &models.Reservation{
		RoomID:      req.RoomID,
		Manager:     req.Manager,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		People:      people,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: req.TotalAmount,
		Deposit:     req.Deposit,
		RoomsCount:  roomsCount,
		Phone:       req.Phone,
		GlutenFree:  req.GlutenFree,
		Notes:       req.Notes,
		Source:      req.Source,
	}, nil
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
	OccupancySvc   *services.OccupancyService
}

func NewReservationController(reservationSvc *services.ReservationService, occupancySvc *services.OccupancyService) *ReservationController {
	return &ReservationController{ReservationSvc: reservationSvc, OccupancySvc: occupancySvc}
}

// GetReservations (GET /api/reservas) — newest first. With ?fecha= the
// response switches to the date-scoped occupancy query: active reservations,
// headcount and the breakfast forecast for the following day.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	if fecha := c.Query("fecha"); fecha != "" {
		date, err := utils.ParseDate(fecha)
		if err != nil {
			respondError(c, services.NewValidationError(err.Error(), "fecha"))
			return
		}
		result, err := ctrl.OccupancySvc.OccupancyOn(date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	reservations, err := ctrl.ReservationSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.SerializeReservations(reservations))
}

// GetReservation (GET /api/reservas/:id)
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.SerializeReservation(*reservation))
}

// CreateReservation (POST /api/reservas)
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	reservation, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctrl.ReservationSvc.Create(reservation); err != nil {
		respondError(c, err)
		return
	}

	created, err := ctrl.ReservationSvc.GetByID(reservation.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.SerializeReservation(*created))
}

// UpdateReservation (PUT /api/reservas/:id)
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	reservation, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := ctrl.ReservationSvc.Update(id, reservation); err != nil {
		respondError(c, err)
		return
	}

	updated, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.SerializeReservation(*updated))
}

// DeleteReservation (DELETE /api/reservas/:id)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.ReservationSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Reserva eliminada")
}

// GetMovements (GET /api/reservas/movimientos?fecha=) — check-ins and
// check-outs for one date, today when omitted.
func (ctrl *ReservationController) GetMovements(c *gin.Context) {
	date := time.Now()
	if fecha := c.Query("fecha"); fecha != "" {
		parsed, err := utils.ParseDate(fecha)
		if err != nil {
			respondError(c, services.NewValidationError(err.Error(), "fecha"))
			return
		}
		date = parsed
	}

	checkins, err := ctrl.ReservationSvc.CheckinsOn(date)
	if err != nil {
		respondError(c, err)
		return
	}
	checkouts, err := ctrl.ReservationSvc.CheckoutsOn(date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkins":  services.SerializeReservations(checkins),
		"checkouts": services.SerializeReservations(checkouts),
		"fecha":     utils.DateOnly(date).Format(utils.ISODate),
	})
}
