package handler

import (
	"net/http"

	"github.com/guilhermehba/estoque-ferro-velho/internal/apierror"
	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login exchanges email+password for an access/refresh token pair.
// Credential failures always return the same 401 regardless of cause.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := currentUserID(c)
	if uid == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("not authenticated"))
		return
	}
	resp, err := h.svc.GetUser(c.Request.Context(), *uid)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("user not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
