package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"social-go/internal/config"
	"social-go/internal/handlers/apiserver"
	appKafka "social-go/internal/kafka"
	"social-go/internal/middleware"
	appRedis "social-go/internal/redis"
	"social-go/internal/services"
	"social-go/internal/sntypes"
	"social-go/internal/storage"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	redisDriver "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("%s %s starting", cfg.AppName, cfg.AppVersion)

	db, err := storage.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := storage.AutoMigrateTables(db); err != nil {
		log.Printf("Warning: database migration failed: %v", err)
	}

	redisClient := redisDriver.NewClient(&redisDriver.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	tokenBlacklist := appRedis.NewRedisTokenBlacklist(redisClient)

	// Repositories
	userRepo := storage.NewGormUserRepository(db)
	friendshipRepo := storage.NewGormFriendshipRepository(db)
	groupRepo := storage.NewGormGroupRepository(db)
	postRepo := storage.NewGormPostRepository(db)
	commentRepo := storage.NewGormCommentRepository(db)
	locationRepo := storage.NewGormLocationRepository(db)
	imageRepo := storage.NewGormImageRepository(db)
	notificationRepo := storage.NewGormNotificationRepository(db)

	// Kafka producer for activity events
	kfkProducer, err := appKafka.NewConfluentKafkaProducer(cfg.Kafka)
	if err != nil {
		log.Fatalf("Failed to create Kafka producer: %v", err)
	}
	defer kfkProducer.Close()

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	friendshipService := services.NewFriendshipService(db, userRepo, friendshipRepo, kfkProducer, cfg.Kafka)
	groupService := services.NewGroupService(db, groupRepo, userRepo)
	postService := services.NewPostService(db, postRepo, groupRepo, kfkProducer, cfg.Kafka)
	commentService := services.NewCommentService(db, commentRepo, postRepo, kfkProducer, cfg.Kafka)
	locationService := services.NewLocationService(locationRepo)
	imageService := services.NewImageService(imageRepo)
	profileService := services.NewProfileService(userRepo, groupRepo, postRepo, imageRepo, locationRepo, friendshipService)
	notificationService := services.NewNotificationService(notificationRepo)

	// File storage backend
	var storageService sntypes.StorageService
	storageBaseURL := "/uploads"
	switch cfg.Storage.Type {
	case "local":
		storageService, err = storage.NewLocalStorageService(cfg.Storage, storageBaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	default:
		log.Fatalf("Unsupported storage type: %s", cfg.Storage.Type)
	}

	// Handlers
	authHandler := apiserver.NewAuthHandler(authService, tokenBlacklist)
	userHandler := apiserver.NewUserHandler(userService, profileService)
	friendHandler := apiserver.NewFriendHandler(friendshipService)
	groupHandler := apiserver.NewGroupHandler(groupService, postService)
	postHandler := apiserver.NewPostHandler(postService, commentService)
	commentHandler := apiserver.NewCommentHandler(commentService)
	locationHandler := apiserver.NewLocationHandler(locationService)
	uploadHandler := apiserver.NewUploadHandler(storageService, imageService, cfg.Storage)
	notificationHandler := apiserver.NewNotificationHandler(notificationService)

	r := mux.NewRouter()

	// Public auth routes
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	authMW := middleware.AuthMiddleware(cfg.Auth.JWTSecretKey, tokenBlacklist)

	// Authenticated API routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(authMW)

	apiRouter.HandleFunc("/auth/logout", authHandler.LogoutHandler).Methods(http.MethodPost)

	// Users and profiles
	apiRouter.HandleFunc("/users/me", userHandler.GetMeHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/users/me", userHandler.UpdateMeHandler).Methods(http.MethodPut)
	apiRouter.HandleFunc("/users", userHandler.ListUsersHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/users/{userID:[0-9]+}/profile", userHandler.GetProfileHandler).Methods(http.MethodGet)

	// Friendships
	apiRouter.HandleFunc("/friends", friendHandler.ListFriendsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/friends", friendHandler.ChangeFriendshipHandler).Methods(http.MethodPost)

	// Groups and membership
	apiRouter.HandleFunc("/groups", groupHandler.CreateGroupHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/groups", groupHandler.ListGroupsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}", groupHandler.GetGroupDetailsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}", groupHandler.DeleteGroupHandler).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}/join", groupHandler.JoinGroupHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}/leave", groupHandler.LeaveGroupHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}/members", groupHandler.GetGroupMembersHandler).Methods(http.MethodGet)

	// Posts, likes and comments
	apiRouter.HandleFunc("/groups/{groupID:[0-9]+}/posts", postHandler.CreatePostHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/posts/{postID:[0-9]+}", postHandler.GetPostHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/posts/{postID:[0-9]+}", postHandler.EditPostHandler).Methods(http.MethodPut)
	apiRouter.HandleFunc("/posts/{postID:[0-9]+}", postHandler.DeletePostHandler).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/posts/{postID:[0-9]+}/like", postHandler.LikePostHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/posts/{postID:[0-9]+}/comments", commentHandler.CreateCommentHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/comments/{commentID:[0-9]+}", commentHandler.DeleteCommentHandler).Methods(http.MethodDelete)

	// Locations
	apiRouter.HandleFunc("/locations", locationHandler.CreateLocationHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/locations", locationHandler.ListLocationsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/locations/{locationID:[0-9]+}", locationHandler.EditLocationHandler).Methods(http.MethodPut)

	// Uploads
	apiRouter.HandleFunc("/upload", uploadHandler.UploadImageHandler).Methods(http.MethodPost)

	// Notifications
	apiRouter.HandleFunc("/notifications", notificationHandler.ListNotificationsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/notifications/{notificationID:[0-9]+}/read", notificationHandler.MarkNotificationReadHandler).Methods(http.MethodPost)

	// Uploaded files are served directly from disk
	if cfg.Storage.Type == "local" {
		staticPath := strings.TrimSuffix(storageBaseURL, "/") + "/"
		localDir := http.Dir(cfg.Storage.LocalPath)
		r.PathPrefix(staticPath).Handler(http.StripPrefix(staticPath, http.FileServer(localDir)))
		log.Printf("Serving uploaded files at %s from %s", staticPath, cfg.Storage.LocalPath)
	}

	// Activity consumer turns produced events into notification rows.
	activityConsumer, err := appKafka.NewConfluentKafkaConsumer(cfg.Kafka)
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}
	defer activityConsumer.Close()

	consumerCtx, cancelConsumers := context.WithCancel(context.Background())
	defer cancelConsumers()

	go func() {
		topics := []string{cfg.Kafka.ActivityTopic}
		log.Printf("Activity consumer starting on topic %s (group %s)", cfg.Kafka.ActivityTopic, cfg.Kafka.ConsumerGroup)
		err := activityConsumer.Consume(consumerCtx, topics, cfg.Kafka.ConsumerGroup, notificationService.ProcessActivityEvent)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Activity consumer error: %v", err)
		}
	}()

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	corsOptions := []handlers.CORSOption{
		handlers.AllowedOrigins(cfg.Server.CORS.AllowedOrigins),
		handlers.AllowedMethods(cfg.Server.CORS.AllowedMethods),
		handlers.AllowedHeaders(cfg.Server.CORS.AllowedHeaders),
		handlers.ExposedHeaders(cfg.Server.CORS.ExposedHeaders),
		handlers.MaxAge(cfg.Server.CORS.MaxAge),
	}
	if cfg.Server.CORS.AllowCredentials {
		corsOptions = append(corsOptions, handlers.AllowCredentials())
	}
	corsHandler := handlers.CORS(corsOptions...)(r)

	srv := &http.Server{
		Addr:           serverAddr,
		Handler:        corsHandler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		IdleTimeout:    time.Second * 60,
	}

	go func() {
		log.Printf("API server listening on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, stopping API server...")

	cancelConsumers()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("API server forced to shut down: %v", err)
	}

	log.Println("API server stopped")
}
