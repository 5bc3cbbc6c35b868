package router

import (
	"time"

	"essen/internal/config"
	"essen/internal/handler"
	"essen/internal/middleware"
	"essen/internal/repository"
	"essen/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	rolRepo := repository.NewRolRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	subcategoriaRepo := repository.NewSubcategoriaRepository(db)
	platoRepo := repository.NewPlatoRepository(db)
	alergenoRepo := repository.NewAlergenoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, cfg)
	rolSvc := service.NewRolService(rolRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	subcategoriaSvc := service.NewSubcategoriaService(subcategoriaRepo, categoriaRepo)
	platoSvc := service.NewPlatoService(platoRepo, categoriaRepo, subcategoriaRepo, alergenoRepo, rdb)
	alergenoSvc := service.NewAlergenoService(alergenoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	rolesH := handler.NewRolesHandler(rolSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	subcategoriasH := handler.NewSubcategoriasHandler(subcategoriaSvc)
	platosH := handler.NewPlatosHandler(platoSvc)
	alergenosH := handler.NewAlergenosHandler(alergenoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Catálogo público — el frontend del menú lee sin token
	r.GET("/v1/categorias", categoriasH.Listar)
	r.GET("/v1/categorias/:id", categoriasH.Obtener)
	r.GET("/v1/subcategorias", subcategoriasH.Listar)
	r.GET("/v1/subcategorias/:id", subcategoriasH.Obtener)
	r.GET("/v1/platos", platosH.Listar)
	r.GET("/v1/platos/:id", platosH.Obtener)
	r.GET("/v1/alergenos", alergenosH.Listar)
	r.GET("/v1/alergenos/:id", alergenosH.Obtener)
	r.GET("/v1/roles", rolesH.Listar)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin()
	v1 := r.Group("/v1", jwtMW)
	{
		// Métricas de crecimiento, cualquier token válido
		v1.GET("/platos/crecimiento", platosH.Crecimiento)
		v1.GET("/usuarios/crecimiento", usuariosH.Crecimiento)

		// Usuarios — lecturas con cualquier token, escrituras solo administrador
		v1.GET("/usuarios", usuariosH.Listar)
		v1.GET("/usuarios/:id", usuariosH.Obtener)
		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}

		categorias := v1.Group("/categorias", adminMW)
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		subcategorias := v1.Group("/subcategorias", adminMW)
		{
			subcategorias.POST("", subcategoriasH.Crear)
			subcategorias.PUT("/:id", subcategoriasH.Actualizar)
			subcategorias.DELETE("/:id", subcategoriasH.Eliminar)
		}

		platos := v1.Group("/platos", adminMW)
		{
			platos.POST("", platosH.Crear)
			platos.PUT("/:id", platosH.Actualizar)
			platos.DELETE("/:id", platosH.Eliminar)
		}

		alergenos := v1.Group("/alergenos", adminMW)
		{
			alergenos.POST("", alergenosH.Crear)
			alergenos.PUT("/:id", alergenosH.Actualizar)
			alergenos.DELETE("/:id", alergenosH.Eliminar)
		}

		roles := v1.Group("/roles", adminMW)
		{
			roles.POST("", rolesH.Crear)
			roles.PUT("/:id", rolesH.Actualizar)
			roles.DELETE("/:id", rolesH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
