package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the operator-facing routes on the given group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("", h.List)
	r.GET("/new", h.NewForm)
	r.POST("/new", h.Create)
	r.GET("/prompt/:id", h.Detail)
}
