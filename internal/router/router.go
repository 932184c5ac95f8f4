// Package router builds the echo instance: global middleware, system
// routes and the three API route groups.
package router

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/course-apis/internal/handler"
	"github.com/deppfellow/course-apis/internal/middleware"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// multipartAllowance covers the multipart envelope around an upload.
const multipartAllowance = 64 << 10

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	return newRouter(s, h, middleware.NewMiddlewares(s, services.Auth))
}

func newRouter(s *server.Server, h *handler.Handlers, middlewares *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and New Relic transaction must exist
	// before the request logger is built from them.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerDealershipRoutes(router, h)
	registerPokedexRoutes(router.Group("/api/v2"), h)
	registerTesloRoutes(router.Group("/api"), h, middlewares, s.Config.Files.MaxUploadBytes)

	return router
}

func registerDealershipRoutes(r *echo.Echo, h *handler.Handlers) {
	cars := r.Group("/cars")
	cars.GET("", handler.Handle(h.Car.FindAll, http.StatusOK))
	cars.GET("/:id", handler.Handle(h.Car.FindByID, http.StatusOK))
	cars.POST("", handler.Handle(h.Car.Create, http.StatusCreated))
	cars.PATCH("/:id", handler.Handle(h.Car.Update, http.StatusOK))
	cars.DELETE("/:id", handler.Handle(h.Car.Delete, http.StatusOK))

	brands := r.Group("/brands")
	brands.GET("", handler.Handle(h.Brand.FindAll, http.StatusOK))
	brands.GET("/:id", handler.Handle(h.Brand.FindOne, http.StatusOK))
	brands.POST("", handler.Handle(h.Brand.Create, http.StatusCreated))
	brands.PATCH("/:id", handler.Handle(h.Brand.Update, http.StatusOK))
	brands.DELETE("/:id", handler.HandleNoContent(h.Brand.Remove, http.StatusNoContent))

	r.POST("/seed", handler.HandleString(h.Seed.Dealership))
}

func registerPokedexRoutes(g *echo.Group, h *handler.Handlers) {
	pokemon := g.Group("/pokemon")
	pokemon.GET("", handler.Handle(h.Pokemon.FindAll, http.StatusOK))
	pokemon.GET("/:term", handler.Handle(h.Pokemon.FindOne, http.StatusOK))
	pokemon.POST("", handler.Handle(h.Pokemon.Create, http.StatusCreated))
	pokemon.PATCH("/:term", handler.Handle(h.Pokemon.Update, http.StatusOK))
	pokemon.DELETE("/:id", handler.HandleNoContent(h.Pokemon.Remove, http.StatusNoContent))

	g.POST("/seed", h.Seed.Pokedex)
}

func registerTesloRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares, maxUploadBytes int64) {
	requireAuth := m.Auth.RequireAuth
	requireAdmin := m.Auth.RequireRoles(user.RoleAdmin)

	products := g.Group("/products")
	products.GET("", handler.Handle(h.Product.FindAll, http.StatusOK))
	products.GET("/:term", handler.Handle(h.Product.FindOne, http.StatusOK))
	products.POST("", handler.Handle(h.Product.Create, http.StatusCreated), requireAuth)
	products.PATCH("/:id", handler.Handle(h.Product.Update, http.StatusOK), requireAuth, requireAdmin)
	products.DELETE("/:id", handler.HandleNoContent(h.Product.Remove, http.StatusNoContent), requireAuth, requireAdmin)

	auth := g.Group("/auth", m.RateLimit.Limit("auth"))
	auth.POST("/register", handler.Handle(h.Auth.Register, http.StatusCreated))
	auth.POST("/login", handler.Handle(h.Auth.Login, http.StatusOK))
	auth.GET("/check-status", handler.Handle(h.Auth.CheckStatus, http.StatusOK), requireAuth)

	// Oversized uploads are refused before the multipart body is parsed.
	files := g.Group("/files", echomw.BodyLimit(fmt.Sprintf("%dB", maxUploadBytes+multipartAllowance)))
	files.POST("/product", handler.Handle(h.File.UploadProductImage, http.StatusCreated))
	files.GET("/product/:imageName", handler.HandleFile(h.File.FindProductImage))

	g.POST("/seed", handler.HandleString(h.Seed.Teslo))
}
