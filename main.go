package main

import (
	"context"
	"log"

	"github.com/AlphaHasher/churchlink-go/api"
	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/config"
	"github.com/AlphaHasher/churchlink-go/i18n"
	"github.com/AlphaHasher/churchlink-go/services"
	"github.com/AlphaHasher/churchlink-go/store"
	"github.com/AlphaHasher/churchlink-go/utils/images"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	cacheManager := cache.NewManager(config.PageCacheTTL, config.FragmentCacheTTL)
	cache.StartCleanupRoutine(cacheManager, config.CleanupInterval)
	log.Println("Cache manager initialized")

	db, err := store.NewDatabase(&store.Config{
		TursoDatabase: config.TursoDatabase,
		TursoToken:    config.TursoToken,
		SQLitePath:    config.SQLitePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	log.Printf("Database ready (%s)", db.ConnectionInfo())

	bundle, err := i18n.Load(config.LocalesDir, config.DefaultLocale, config.SupportedLocales)
	if err != nil {
		log.Fatalf("Failed to load locale bundles: %v", err)
	}
	log.Printf("Loaded locales: %v", bundle.Supported())

	pages := store.NewPageRepository(db)
	assets := store.NewAssetRepository(db)

	broadcaster := services.NewPreviewBroadcaster()
	go broadcaster.Run()

	warmer := services.NewPageWarmingService(cacheManager, pages)
	if _, err := warmer.WarmVisiblePages(context.Background()); err != nil {
		log.Printf("WARNING: page warming failed: %v", err)
	}

	api.Configure(&api.Deps{
		Cache:             cacheManager,
		Pages:             pages,
		Assets:            assets,
		Bundle:            bundle,
		Broadcaster:       broadcaster,
		Processor:         images.NewImageProcessor(config.MediaRoot),
		JWTSecret:         config.JWTSecret,
		AESKey:            config.AESKey,
		BuilderSecretHash: config.BuilderSecretHash,
	})

	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(cors.New(cors.Config{
		AllowOrigins: config.AllowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"Accept-Language", "X-Requested-With",
		},
		AllowCredentials: true,
	}))

	r.Static("/media", config.MediaRoot)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", api.HealthHandler)
		v1.POST("/auth/preview", api.PreviewAuthHandler)

		v1.GET("/pages", api.ListPagesHandler)
		v1.PUT("/pages", api.UpsertPageHandler)
		v1.GET("/pages/:slug/html", api.GetPageHTMLHandler)
		v1.POST("/pages/:slug/html", api.RenderPageHandler)

		v1.GET("/fragments/sections/:id", api.GetSectionFragmentHandler)

		v1.POST("/assets", api.UploadAssetHandler)
		v1.GET("/assets/:id", api.GetAssetHandler)

		v1.GET("/preview/pages/:id/ws", api.PreviewSocketHandler)
	}

	log.Printf("Listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
