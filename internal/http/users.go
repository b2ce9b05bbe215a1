package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socialhub/internal/service"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateUserRequest binds from JSON or multipart forms; absent fields stay nil.
type updateUserRequest struct {
	Email       *string `json:"email" form:"email"`
	Name        *string `json:"name" form:"name"`
	DateOfBirth *string `json:"dateOfBirth" form:"dateOfBirth"`
	Bio         *string `json:"bio" form:"bio"`
	Location    *string `json:"location" form:"location"`
}

const avatarFormField = "avatar"

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.writeError(c, "register", err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) current(c *gin.Context) {
	profile, err := h.users.Current(c.Request.Context(), callerID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, "current", err)
		return
	}

	c.JSON(http.StatusOK, profileToResponse(*profile))
}

func (h *Handler) getUser(c *gin.Context) {
	profile, err := h.users.GetByID(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.writeError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, profileToResponse(*profile))
}

func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := service.UpdateUserInput{
		Email:       req.Email,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
		Location:    req.Location,
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile(avatarFormField)
		switch {
		case err == nil:
			file, err := header.Open()
			if err != nil {
				h.writeError(c, "open upload", err)
				return
			}
			defer file.Close()
			input.Avatar = &service.Upload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		case !errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid avatar upload"})
			return
		}
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), callerID(c), input)
	if err != nil {
		h.writeError(c, "update user", err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}
