package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/HenrySago1/Restaurantesw2/internal/config"
	"github.com/HenrySago1/Restaurantesw2/internal/handler"
	"github.com/HenrySago1/Restaurantesw2/internal/middleware"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Postgres/Mongo/Redis
func New(cfg *config.Config, db *gorm.DB, mdb *mongo.Database, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// PUT/PATCH/DELETE on a collection path answer 405, not 404.
	r.HandleMethodNotAllowed = true

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	contactoRepo := repository.NewContactoRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	itemPedidoRepo := repository.NewItemPedidoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(mdb)
	platoRepo := repository.NewPlatoRepository(mdb, categoriaRepo)
	insumoRepo := repository.NewInsumoRepository(mdb)

	platoCache := service.NewPlatoCache(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	reservaSvc := service.NewReservaService(reservaRepo, clienteRepo)
	contactoSvc := service.NewContactoService(contactoRepo, clienteRepo)
	mesaSvc := service.NewMesaService(mesaRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, facturaRepo, mesaRepo)
	itemPedidoSvc := service.NewItemPedidoService(itemPedidoRepo, pedidoRepo)
	facturaSvc := service.NewFacturaService(facturaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, platoCache)
	platoSvc := service.NewPlatoService(platoRepo, categoriaRepo, platoCache)
	insumoSvc := service.NewInsumoService(insumoRepo, platoRepo, platoCache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	contactosH := handler.NewContactosHandler(contactoSvc)
	mesasH := handler.NewMesasHandler(mesaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	itemPedidosH := handler.NewItemPedidosHandler(itemPedidoSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	platoesH := handler.NewPlatoesHandler(platoSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, mdb, rdb))

	api := r.Group("/api")
	{
		registrarCRUD(api, "/clientes", clientesH.Crear, clientesH.Listar, clientesH.ObtenerPorID, clientesH.Actualizar, clientesH.ActualizarParcial, clientesH.Eliminar)
		registrarCRUD(api, "/reservas", reservasH.Crear, reservasH.Listar, reservasH.ObtenerPorID, reservasH.Actualizar, reservasH.ActualizarParcial, reservasH.Eliminar)
		registrarCRUD(api, "/contactos", contactosH.Crear, contactosH.Listar, contactosH.ObtenerPorID, contactosH.Actualizar, contactosH.ActualizarParcial, contactosH.Eliminar)
		registrarCRUD(api, "/mesas", mesasH.Crear, mesasH.Listar, mesasH.ObtenerPorID, mesasH.Actualizar, mesasH.ActualizarParcial, mesasH.Eliminar)
		registrarCRUD(api, "/pedidos", pedidosH.Crear, pedidosH.Listar, pedidosH.ObtenerPorID, pedidosH.Actualizar, pedidosH.ActualizarParcial, pedidosH.Eliminar)
		registrarCRUD(api, "/item-pedidos", itemPedidosH.Crear, itemPedidosH.Listar, itemPedidosH.ObtenerPorID, itemPedidosH.Actualizar, itemPedidosH.ActualizarParcial, itemPedidosH.Eliminar)
		registrarCRUD(api, "/facturas", facturasH.Crear, facturasH.Listar, facturasH.ObtenerPorID, facturasH.Actualizar, facturasH.ActualizarParcial, facturasH.Eliminar)
		registrarCRUD(api, "/categorias", categoriasH.Crear, categoriasH.Listar, categoriasH.ObtenerPorID, categoriasH.Actualizar, categoriasH.ActualizarParcial, categoriasH.Eliminar)
		registrarCRUD(api, "/platoes", platoesH.Crear, platoesH.Listar, platoesH.ObtenerPorID, platoesH.Actualizar, platoesH.ActualizarParcial, platoesH.Eliminar)
		registrarCRUD(api, "/insumos", insumosH.Crear, insumosH.Listar, insumosH.ObtenerPorID, insumosH.Actualizar, insumosH.ActualizarParcial, insumosH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// registrarCRUD mounts the standard CRUD verb set under the given resource path.
func registrarCRUD(g *gin.RouterGroup, path string, crear, listar, obtener, actualizar, parcial, eliminar gin.HandlerFunc) {
	res := g.Group(path)
	{
		res.POST("", crear)
		res.GET("", listar)
		res.GET("/:id", obtener)
		res.PUT("/:id", actualizar)
		res.PATCH("/:id", parcial)
		res.DELETE("/:id", eliminar)
	}
}
