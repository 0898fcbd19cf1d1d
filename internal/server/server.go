package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"teamfolio/internal/config"
	"teamfolio/internal/database"
	"teamfolio/internal/github"
	"teamfolio/internal/handlers"
	"teamfolio/internal/repositories"
	"teamfolio/internal/routes"
	"teamfolio/internal/services"
	"teamfolio/internal/storage"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379")),
	})
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis successfully")
	}

	objectStore := newObjectStore()
	thumbnails := storage.NewThumbnailStore(objectStore)

	ghClient := github.NewClient(config.GitHubBaseURL(), config.GitHubToken())

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)
	projectRepo := repositories.NewProjectRepository(pool)
	teamRepo := repositories.NewTeamMemberRepository(pool)

	userService := services.NewUserService(userRepo, redisRepo)
	projectService := services.NewProjectService(projectRepo, ghClient, thumbnails, redisRepo)
	teamService := services.NewTeamService(teamRepo, ghClient, thumbnails, redisRepo)

	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	teamHandler := handlers.NewTeamHandler(teamService)
	metaHandler := handlers.NewMetaHandler(
		projectService,
		config.SiteBaseURL(),
		envOr("SITE_TITLE", "Teamfolio"),
		envOr("SITE_TAGLINE", "Code Together"),
	)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envOr("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, authHandler, projectHandler, teamHandler, metaHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// newObjectStore uses the S3 store when an endpoint is configured and falls
// back to the local disk store for development.
func newObjectStore() storage.ObjectStore {
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	if endpoint == "" {
		log.Println("STORAGE_ENDPOINT not set, using local object store")
		return storage.NewLocalStore(os.Getenv("STORAGE_LOCAL_ROOT"), config.SiteBaseURL()+"/uploads")
	}

	store, err := storage.NewS3Client(storage.S3Config{
		EndpointURL:     endpoint,
		AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("STORAGE_SECRET_KEY"),
		Region:          os.Getenv("STORAGE_REGION"),
	})
	if err != nil {
		log.Fatalf("failed to create object store client: %v", err)
	}
	return store
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
