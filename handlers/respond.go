package handlers

import (
	"errors"
	"net/http"

	"serenia/services/booking"
	"serenia/services/schedule"

	"github.com/gin-gonic/gin"
)

// failFromError maps a service failure onto the HTTP edge. Every failure
// carries a distinguishable kind so clients can render "slot no longer
// available" versus a generic retry prompt.
func failFromError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	kind := schedule.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case schedule.KindNotFound:
		status = http.StatusNotFound
	case schedule.KindConflict, schedule.KindRace:
		status = http.StatusConflict
	case schedule.KindValidation:
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error(), "kind": string(kind)})
}
