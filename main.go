package main

import (
	"context"
	"log"
	"time"

	"github.com/Aashish23092/schemelink/catalog"
	"github.com/Aashish23092/schemelink/client"
	"github.com/Aashish23092/schemelink/config"
	"github.com/Aashish23092/schemelink/handler"
	"github.com/Aashish23092/schemelink/service"
	"github.com/Aashish23092/schemelink/store"
)

const sessionTTL = 2 * time.Hour

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	log.Printf("TESSDATA_PREFIX: %s, OCR languages: %v", cfg.TesseractDataPath, cfg.OCRLanguages)

	// Scheme catalog
	schemes, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load scheme catalog: %v", err)
	}
	log.Printf("Loaded %d schemes", schemes.Len())

	// Profile store
	profileStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open profile store: %v", err)
	}
	defer profileStore.Close()

	mergePolicy, err := service.ParseMergePolicy(cfg.MergePolicy)
	if err != nil {
		log.Fatalf("Invalid MERGE_POLICY: %v", err)
	}

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// Initialize service layer
	documentService := service.NewDocumentService(tesseractClient, service.NewPDFProcessor())
	profileService := service.NewProfileService(profileStore, schemes)
	sessions := service.NewSessionManager()
	go expireSessions(sessions)

	// Initialize handler layer
	router := handler.SetupRouter(handler.Handlers{
		Document: handler.NewDocumentHandler(documentService),
		Session:  handler.NewSessionHandler(sessions, documentService, profileService, mergePolicy, cfg.MaxFileSize),
		Scheme:   handler.NewSchemeHandler(schemes, profileService),
		Profile:  handler.NewProfileHandler(profileService),
	}, "SchemeLink")

	// Start server
	log.Printf("Starting SchemeLink on port %s (store: %s, merge: %s)", cfg.ServerPort, cfg.ProfileStore, mergePolicy)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func openStore(cfg *config.Config) (store.ProfileStore, error) {
	switch cfg.ProfileStore {
	case config.StoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return store.NewSQLiteStore(cfg.SQLitePath)
	}
}

func expireSessions(sessions *service.SessionManager) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if n := sessions.Expire(sessionTTL); n > 0 {
			log.Printf("Expired %d idle scan sessions", n)
		}
	}
}
