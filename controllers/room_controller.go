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

type RoomController struct {
	RoomSvc        *services.RoomService
	ReservationSvc *services.ReservationService
}

func NewRoomController(roomSvc *services.RoomService, reservationSvc *services.ReservationService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, ReservationSvc: reservationSvc}
}

// GetRooms (GET /api/habitaciones) — id/numero/tipo/piso per room, nothing
// from the storage layer.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]services.RoomRef, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, services.NewRoomRef(room))
	}
	c.JSON(http.StatusOK, out)
}

// CreateRoom (POST /api/habitaciones)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.NewRoomRef(room))
}

// UpdateRoom (PUT /api/habitaciones/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.RoomSvc.Update(id, &room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Habitación actualizada")
}

// DeleteRoom (DELETE /api/habitaciones/:id). Whether reservations cascade or
// block the deletion depends on the configured policy.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(id, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("✅ Habitación %d eliminada", id)
	utils.JSONSuccess(c, http.StatusOK, "Habitación eliminada")
}

// GetRoomDetails (GET /api/habitaciones/:id/detalles) — the room with its
// reservation history, newest stay first.
func (ctrl *RoomController) GetRoomDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	reservations, err := ctrl.ReservationSvc.ByRoom(room.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range reservations {
		reservations[i].Room = *room
	}
	c.JSON(http.StatusOK, gin.H{
		"habitacion": room.Number,
		"tipo":       room.Category,
		"piso":       room.Floor,
		"reservas":   services.SerializeReservations(reservations),
	})
}
