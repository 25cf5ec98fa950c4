package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dathagerty/feedback-app/internal/api/admin"
	"github.com/dathagerty/feedback-app/internal/api/feedback"
	"github.com/dathagerty/feedback-app/internal/middleware"
	"github.com/dathagerty/feedback-app/internal/repository"
	"github.com/dathagerty/feedback-app/web"
)

// NewRouter assembles the HTTP routes over the injected repository.
func NewRouter(repo *repository.Repository) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/admin")
	})

	admin.RegisterRoutes(router.Group("/admin"), admin.NewHandler(repo))
	feedback.RegisterRoutes(router.Group("/feedback"), feedback.NewHandler(repo))

	return router
}
