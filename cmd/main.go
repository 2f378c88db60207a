package main

import (
	"fmt"
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"resume-screener/auth"
	"resume-screener/config"
	"resume-screener/infrastructure"
	"resume-screener/interfaces"
	"resume-screener/repository"
	"resume-screener/usecase"
)

func main() {
	cfg := config.Load()

	// Connect DB
	db := infrastructure.NewMySQLConnection(cfg.DBDSN)

	// Local upload storage
	storage, err := infrastructure.NewStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	// Extraction + scoring clients
	extractor := infrastructure.NewExtractor(infrastructure.NewTesseractOCR())
	scorer := infrastructure.NewOpenAIScorer(cfg.OpenAIKey, cfg.OpenAIModel)

	// Identity token verification
	verifier := auth.NewProviderVerifier(cfg.AuthProjectID)

	// Repositories + pipeline
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	pipeline := usecase.NewPipeline(storage, extractor, scorer, resumeRepo)

	// Setup Gin router
	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob("templates/*.html")
	router.Use(sessions.Sessions("session", cookie.NewStore([]byte(cfg.SecretKey))))

	interfaces.NewAuthHandler(router, verifier)
	interfaces.NewJobHandler(router, jobRepo)
	interfaces.NewResumeHandler(router, jobRepo, resumeRepo, pipeline, storage, cfg.StrictUploadErrors)

	fmt.Printf("🚀 Server running on http://localhost:%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
