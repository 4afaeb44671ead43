package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/di"
	"blog_backend/internal/app/router"
	bloghandler "blog_backend/internal/feature/blogs/transport/handler"
	blogusecase "blog_backend/internal/feature/blogs/usecase"
	useradapters "blog_backend/internal/feature/users/adapters"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	userusecase "blog_backend/internal/feature/users/usecase"
	"blog_backend/internal/platform/config"
	platformdb "blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	platformredis "blog_backend/internal/platform/redis"
)

func main() {
	// .envがあれば読み込む（なくてもエラーにしない）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using process environment.")
	}

	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token service
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Repository
	userRepo := useradapters.NewUserPostgres(db)
	blogRepo := di.NewBlogRepository(rdb, db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, generator)
	blogUC := blogusecase.NewBlogUsecase(blogRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC, blogUC)
	blogH := bloghandler.NewBlogHandler(blogUC)

	// ルータ生成
	router := router.NewRouter(userH, blogH, verifier, userRepo)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
