package api

import (
	blogHandler "autodialer/internal/blog/handler"
	dialerHandler "autodialer/internal/dialer/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router        *gin.RouterGroup
	dialerHandler dialerHandler.Handler
	blogHandler   blogHandler.Handler
}

func New(router *gin.RouterGroup, dialerHandler dialerHandler.Handler, blogHandler blogHandler.Handler) API {
	return API{
		router:        router,
		dialerHandler: dialerHandler,
		blogHandler:   blogHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/download_csv", a.dialerHandler.HandleDownloadCallLog)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/process_prompt", a.dialerHandler.HandleProcessPrompt)
		apiGroup.POST("/generate_blogs", a.blogHandler.HandleGenerateBlogs)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
