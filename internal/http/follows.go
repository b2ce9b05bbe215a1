package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type followRequest struct {
	FollowingID string `json:"followingId"`
}

func (h *Handler) follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	follow, err := h.follows.Follow(c.Request.Context(), callerID(c), req.FollowingID)
	if err != nil {
		h.writeError(c, "follow", err)
		return
	}

	c.JSON(http.StatusOK, followToResponse(*follow))
}

func (h *Handler) unfollow(c *gin.Context) {
	if err := h.follows.Unfollow(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		h.writeError(c, "unfollow", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unfollowed": c.Param("id")})
}
