package feedback

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public submission routes on the given group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/:id", h.Form)
	r.POST("/:id", h.Submit)
}
