package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses. Unexpected errors
// are logged and answered as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		body := gin.H{
			"status":  "error",
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if appErr.ConflictingID != 0 {
			body["reserva_id"] = appErr.ConflictingID
		}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		if appErr.Code == services.ErrCodeInternal {
			log.Printf("❌ internal error: %v", appErr)
		}
		c.JSON(appErr.HTTPStatus(), body)
		return
	}

	log.Printf("❌ unhandled error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "internal error")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
