package main

import (
	"net/http"

	"VillionChat/config"
	"VillionChat/internal/chat"
	"VillionChat/internal/follow"
	"VillionChat/internal/middleware"
	"VillionChat/internal/presence"
	"VillionChat/internal/room"
	"VillionChat/internal/storage"
	"VillionChat/internal/user"
	"VillionChat/internal/utils"
	"VillionChat/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. 初始化 Postgres / Redis
	//-------------------------------------------------------
	if err := storage.InitPostgres(config.C.Database.DSN); err != nil {
		utils.Error.Fatalf("Postgres init failed: %v", err)
	}
	if err := storage.Migrate(storage.DB); err != nil {
		utils.Error.Fatalf("Migrate failed: %v", err)
	}
	if err := storage.InitRedis(
		config.C.Redis.Addr,
		config.C.Redis.Password,
		config.C.Redis.DB,
	); err != nil {
		utils.Error.Fatalf("Redis init failed: %v", err)
	}

	//-------------------------------------------------------
	// 2. 初始化 Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. 仓储与在线状态
	//-------------------------------------------------------
	userRepo := user.NewPostgresRepo(storage.DB)
	roomRepo := room.NewPostgresRepo(storage.DB)
	followRepo := follow.NewPostgresRepo(storage.DB)
	pres := presence.NewStore(storage.Rdb)

	//-------------------------------------------------------
	// 4. Hub（必须最先启动）
	//-------------------------------------------------------
	hub := websocket.NewHub()
	hub.OnConnect = func(userID int64) {
		if _, err := pres.Connect(storage.Ctx, userID); err != nil {
			utils.Error.Printf("presence connect %d: %v", userID, err)
		}
	}
	hub.OnDisconnect = func(userID int64) {
		if err := pres.Disconnect(storage.Ctx, userID); err != nil {
			utils.Error.Printf("presence disconnect %d: %v", userID, err)
		}
	}
	go hub.Run()

	//-------------------------------------------------------
	// 5. 业务服务
	//-------------------------------------------------------
	roomSvc := room.NewService(roomRepo, userRepo)
	followSvc := follow.NewService(followRepo, userRepo)
	chatSvc := chat.NewService(roomSvc, userRepo, hub)

	chatHandler := chat.NewHandler(chatSvc, hub)
	hub.OnIncoming = chatHandler.HandleEvent

	//-------------------------------------------------------
	// 6. 路由
	//-------------------------------------------------------
	secret := []byte(config.C.JWT.Secret)

	uh := user.NewHandler(userRepo, secret, pres)
	r.POST("/users/register", uh.Register)
	r.POST("/users/login", uh.Login)
	r.GET("/users", uh.List)
	r.GET("/users/online", uh.ListOnline)
	r.GET("/users/username/:username", uh.GetByUsername)
	r.GET("/users/:id", uh.GetByID)
	r.PUT("/users/:id", uh.Update)
	r.DELETE("/users/:id", uh.Delete)

	fh := follow.NewHandler(followSvc)
	r.POST("/follows/:targetId", fh.Follow)
	r.DELETE("/follows/:targetId", fh.Unfollow)
	r.GET("/follows/following", fh.Following)
	r.GET("/follows/followers", fh.Followers)

	rh := room.NewHandler(roomSvc)
	r.POST("/rooms", rh.Create)
	r.GET("/rooms", rh.List)
	r.GET("/rooms/:roomId", rh.Get)
	r.POST("/rooms/:roomId/join", rh.Join)
	r.POST("/rooms/:roomId/leave", rh.Leave)

	//-------------------------------------------------------
	// 7. WebSocket + 匹配入口（需 JWT）
	//-------------------------------------------------------
	auth := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		auth.GET("/ws", websocket.ServeWS(hub))
		auth.POST("/match/random", chatHandler.Random)
		auth.GET("/match/waiting", chatHandler.Waiting)
	}

	//-------------------------------------------------------
	// 8. 启动服务器
	//-------------------------------------------------------
	utils.Info.Printf("Server running on %s", config.C.Server.Port)
	r.Run(config.C.Server.Port)
}
