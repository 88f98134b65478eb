package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/handler"
	mdw "github.com/anhthuvo/mobileAppBE/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	JWTer   *auth.JWTer
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Image   *handler.ImageHandler
}

// New assembles the engine: ambient middleware, ops endpoints, and the
// /api/v1 route table with its auth gates.
func New(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authed := mdw.AuthJWT(d.JWTer, "")
	adminOnly := mdw.AuthJWT(d.JWTer, domain.RoleAdmin)

	users := api.Group("/users")
	{
		users.POST("/signup", d.User.Signup)
		users.POST("/login", d.User.Login)
		users.GET("", adminOnly, d.User.List)
		users.DELETE("", adminOnly, d.User.Delete)
		users.GET("/:uid", authed, d.User.Get)
		users.PUT("/:uid", authed, d.User.Update)
	}

	products := api.Group("/products")
	{
		products.GET("", d.Product.List)
		products.GET("/:id", d.Product.Get)
		products.POST("/add", authed, d.Product.Add)
		products.PUT("/:id", authed, d.Product.Update)
		products.DELETE("", adminOnly, d.Product.Delete)
	}

	images := api.Group("/images")
	{
		images.POST("", authed, d.Image.Upload)
		images.GET("/:name", d.Image.Download)
	}

	return r
}
