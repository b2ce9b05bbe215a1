package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createPostRequest struct {
	Content string `json:"content"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), callerID(c), req.Content)
	if err != nil {
		h.writeError(c, "create post", err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		h.writeError(c, "list posts", err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "get post", err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) deletePost(c *gin.Context) {
	id := c.Param("id")
	if err := h.posts.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		h.writeError(c, "delete post", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
