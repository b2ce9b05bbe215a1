package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

func (h *Handler) createComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req.PostID, req.Content, callerID(c))
	if err != nil {
		h.writeError(c, "create comment", err)
		return
	}

	c.JSON(http.StatusOK, commentToResponse(*comment))
}

func (h *Handler) deleteComment(c *gin.Context) {
	comment, err := h.comments.Delete(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.writeError(c, "delete comment", err)
		return
	}

	c.JSON(http.StatusOK, commentToResponse(*comment))
}
