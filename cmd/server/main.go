package main

import (
	"strings"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/academico"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/auth"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/config"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/estoque"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/logger"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/middleware"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/monitor"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/notificacoes"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/relatorios"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/usuarios"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog := logger.New(cfg.LogLevel)
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	database.Init(cfg)

	// Redis é opcional; sem ele as listas vão sempre ao Postgres
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zlog.Warn("REDIS_URL inválida, cache desligado", zap.Error(err))
		} else {
			estoque.ConfigurarCache(redis.NewClient(opts), zlog)
			zlog.Info("cache de listas habilitado")
		}
	}

	hub := notificacoes.NewHub(zlog)

	// /health, /metrics e websocket ficam num servidor próprio
	mon := monitor.New(":"+cfg.MonitorPort, hub)
	go func() {
		if err := mon.Start(); err != nil {
			zlog.Error("servidor de monitoração caiu", zap.Error(err))
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zlog.Error("erro inesperado", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(middleware.WithRequestID())
	app.Use(middleware.RequestLogger(zlog))
	app.Use(middleware.Metrics())

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/registrar-primeiro-admin", auth.RegistrarPrimeiroAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Leituras compartilhadas
	protected.Get("/produtos", estoque.ListProdutosHandler())
	protected.Get("/produtos/:id", estoque.GetProdutoHandler())
	protected.Get("/medidas", estoque.ListMedidasHandler())
	protected.Get("/cursos", academico.ListCursosHandler())
	protected.Get("/turmas", academico.ListTurmasHandler())
	protected.Get("/turmas/:id", academico.GetTurmaHandler())
	protected.Get("/cargos", usuarios.ListCargosHandler())

	// Movimentações e solicitações: qualquer usuário logado
	protected.Post("/movimentacoes", estoque.CreateMovimentacaoHandler())
	protected.Get("/movimentacoes", estoque.ListMovimentacoesHandler())
	protected.Post("/notificacoes", notificacoes.CreateNotificacaoHandler(hub))
	protected.Get("/notificacoes", notificacoes.ListNotificacoesHandler())

	// Relatórios
	protected.Get("/relatorios/estoque.pdf", relatorios.EstoquePDFHandler())
	protected.Get("/relatorios/estoque.xlsx", relatorios.EstoqueExcelHandler())
	protected.Get("/relatorios/movimentacoes.pdf", relatorios.MovimentacoesPDFHandler())
	protected.Get("/relatorios/movimentacoes.xlsx", relatorios.MovimentacoesExcelHandler())

	// Rotas administrativas
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireCargo(models.CargoAdmin))

	// Produtos e medidas
	adminRoutes.Post("/produtos", estoque.CreateProdutoHandler())
	adminRoutes.Put("/produtos/:id", estoque.UpdateProdutoHandler())
	adminRoutes.Delete("/produtos/:id", estoque.DeleteProdutoHandler())
	adminRoutes.Post("/medidas", estoque.CreateMedidaHandler())
	adminRoutes.Delete("/medidas/:id", estoque.DeleteMedidaHandler())

	// Usuários
	adminRoutes.Get("/usuarios", usuarios.ListUsuariosHandler())
	adminRoutes.Get("/usuarios/:id", usuarios.GetUsuarioHandler())
	adminRoutes.Post("/usuarios", usuarios.CreateUsuarioHandler())
	adminRoutes.Put("/usuarios/:id", usuarios.UpdateUsuarioHandler())
	adminRoutes.Delete("/usuarios/:id", usuarios.DeleteUsuarioHandler())

	// Cursos e turmas
	adminRoutes.Post("/cursos", academico.CreateCursoHandler())
	adminRoutes.Put("/cursos/:id", academico.UpdateCursoHandler())
	adminRoutes.Delete("/cursos/:id", academico.DeleteCursoHandler())
	adminRoutes.Post("/turmas", academico.CreateTurmaHandler())
	adminRoutes.Put("/turmas/:id", academico.UpdateTurmaHandler())
	adminRoutes.Delete("/turmas/:id", academico.DeleteTurmaHandler())

	// Decisão das solicitações
	adminRoutes.Put("/notificacoes/:id/status", notificacoes.DecidirNotificacaoHandler(hub))
	adminRoutes.Delete("/notificacoes/:id", notificacoes.DeleteNotificacaoHandler())

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	zlog.Info("servidor rodando", zap.String("porta", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zlog.Fatal("servidor encerrou com erro", zap.Error(err))
	}
}
