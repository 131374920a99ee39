package main

import (
	"fmt"
	"log"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/email/noop"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/email/ses"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/handler"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/repository/postgres"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/repository/redisstore"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/router"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/service"
	s3storage "github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/storage/s3"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/submit"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := redisstore.NewClient(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	productRepo := postgres.NewProductRepo(db)
	stateRepo := redisstore.NewStateRepo(redisClient, cfg.Redis.SessionTTL)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// EMI engine
	registry := emi.NewRegistry(emi.DefaultProviders())
	calculator := emi.NewCalculator(registry)
	builder := submit.NewBuilder(calculator)

	// Financing partner client
	submitter := submit.NewClient(cfg.Partner.Endpoint, cfg.S3.Bucket, cfg.Partner.Timeout, s3Client)

	// Confirmation email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	appSvc := service.NewApplicationService(productRepo, stateRepo, s3Client, submitter, builder, emailSender, &cfg.S3)
	productSvc := service.NewProductService(productRepo, cfg.Search.Debounce, cfg.Search.MaxHits)

	// Initialize handlers
	appH := handler.NewApplicationHandler(appSvc, &cfg.Session)
	emiH := handler.NewEMIHandler(calculator, registry)
	productH := handler.NewProductHandler(productSvc)
	healthH := handler.NewHealthHandler(db, redisClient)

	// Setup router
	r := router.Setup(cfg, appH, emiH, productH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
