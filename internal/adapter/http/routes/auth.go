package routes

import (
	"orcafacil/internal/adapter/http/handlers"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	group := rg.Group(PathAuth)
	{
		group.POST("/signup", authHandler.SignUp)
		group.POST("/signin", authHandler.SignIn)
		group.GET("/session", handlers.SessionMiddleware(auth), authHandler.Session)
	}
}
