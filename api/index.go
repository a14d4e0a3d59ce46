package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/config"
	"github.com/adhamyosry771-star/filex-design/middleware"
	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
