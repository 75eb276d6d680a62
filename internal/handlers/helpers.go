package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// bindTargetStatus parses the status body of a transition request. On a
// status outside the kind's declared set it writes the 400 response itself,
// listing the valid members, and returns false.
func bindTargetStatus(c *gin.Context, kind moderation.Kind) (moderation.Status, bool) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return 0, false
	}

	target, valid := moderation.StatusFromString(req.Status)
	if !valid || !kind.Allows(target) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid status",
			"valid_statuses": kind.StatusNames(),
		})
		return 0, false
	}

	return target, true
}

// listFilterFromQuery builds the admin list filter from ?status= and ?q=
func listFilterFromQuery(c *gin.Context, kind moderation.Kind) (postgres.ListFilter, bool) {
	filter := postgres.ListFilter{Search: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status, valid := moderation.StatusFromString(raw)
		if !valid || !kind.Allows(status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          "Invalid status filter",
				"valid_statuses": kind.StatusNames(),
			})
			return filter, false
		}
		filter.Status = &status
	}

	return filter, true
}
