package utils

import "github.com/gin-gonic/gin"

// JSONSuccess answers a completed mutation with the flat status/message
// envelope the front end renders as a toast.
func JSONSuccess(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "success", "message": message})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}
