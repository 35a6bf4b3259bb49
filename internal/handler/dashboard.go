package handler

import (
	"net/http"

	"github.com/guilhermehba/estoque-ferro-velho/internal/apierror"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary returns the front-page numbers: stock position plus today's
// purchases, sales and drawer balance.
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
