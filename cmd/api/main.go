package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-medisales-api/internal/handler"
	"go-medisales-api/internal/middleware"
	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"
	"go-medisales-api/internal/service"
	"go-medisales-api/internal/ws"
	"go-medisales-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.MedicalRep{},
		&model.MedicalStore{},
		&model.Attendance{},
		&model.StockBatch{},
		&model.StockBalance{},
		&model.Sale{},
		&model.SaleDetail{},
		&model.DirectSale{},
		&model.Address{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	mrRepo := repository.NewMRRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	stockRepo := repository.NewStockRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	addressRepo := repository.NewAddressRepo(db)

	authService := service.NewAuthService(userRepo, mrRepo)
	directoryService := service.NewDirectoryService(mrRepo, storeRepo, db)
	attendanceService := service.NewAttendanceService(attendanceRepo, db, wsHub)
	stockService := service.NewStockService(stockRepo, db, wsHub)
	salesService := service.NewSalesService(saleRepo, stockService, db, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	mrHandler := handler.NewMRHandler(directoryService)
	storeHandler := handler.NewStoreHandler(directoryService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	stockHandler := handler.NewStockHandler(stockService)
	salesHandler := handler.NewSalesHandler(salesService)
	addressHandler := handler.NewAddressHandler(addressRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "MediSales API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/current-mr", middleware.RequireAuth(), authHandler.CurrentMR)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// MR Routes (mutations are admin-only)
	mrs := protected.Group("/mrs")
	mrs.Get("/", mrHandler.GetMRs)
	mrs.Post("/add", middleware.RequireRole(model.RoleAdmin), mrHandler.CreateMR)
	mrs.Get("/:id", mrHandler.GetMR)
	mrs.Put("/edit/:id", middleware.RequireRole(model.RoleAdmin), mrHandler.UpdateMR)
	mrs.Delete("/delete/:id", middleware.RequireRole(model.RoleAdmin), mrHandler.DeleteMR)

	// Store Routes
	stores := protected.Group("/stores")
	stores.Get("/", storeHandler.GetStores)
	stores.Post("/", middleware.RequireRole(model.RoleAdmin), storeHandler.CreateStore)
	stores.Get("/assign-stores/:mrId", storeHandler.StoresForMR)
	stores.Put("/:id", middleware.RequireRole(model.RoleAdmin), storeHandler.UpdateStore)
	stores.Delete("/:id", middleware.RequireRole(model.RoleAdmin), storeHandler.DeleteStore)

	// Stock Routes
	stock := protected.Group("/stock")
	stock.Post("/add", middleware.RequireRole(model.RoleAdmin), stockHandler.AddStock)
	stock.Get("/get-med", stockHandler.GetMedicines)
	stock.Get("/all-stock", stockHandler.AllStock)

	// Sales Routes
	sales := protected.Group("/sales")
	sales.Post("/add", salesHandler.AddSale)
	sales.Post("/salesdetail", salesHandler.AddSaleDetail)
	sales.Post("/record", salesHandler.RecordSale)
	sales.Post("/record-bulk", salesHandler.RecordBulkSales)
	sales.Get("/currentday-sales/mr/:mrId", salesHandler.TodaySalesForMR)
	sales.Get("/all", salesHandler.AllSales)

	// Attendance Routes
	attendance := protected.Group("/attendance")
	attendance.Post("/mark", attendanceHandler.Mark)
	attendance.Get("/status/:mr_id", attendanceHandler.Status)
	attendance.Get("/history", attendanceHandler.History)

	// Address Routes
	address := protected.Group("/address")
	address.Post("/add-address", addressHandler.AddAddress)
	address.Get("/all-address", addressHandler.ListAddresses)

	// WebSocket Route (live stock/attendance updates)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
