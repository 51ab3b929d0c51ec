package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/database/postgres"
	patientHandler "github.com/Abhijit-without-h/ayush/internal/api/patient/handler"
	patientRepository "github.com/Abhijit-without-h/ayush/internal/api/patient/repository"
	patientService "github.com/Abhijit-without-h/ayush/internal/api/patient/service"
	recognitionHandler "github.com/Abhijit-without-h/ayush/internal/api/recognition/handler"
	recognitionRepository "github.com/Abhijit-without-h/ayush/internal/api/recognition/repository"
	recognitionService "github.com/Abhijit-without-h/ayush/internal/api/recognition/service"
	reportHandler "github.com/Abhijit-without-h/ayush/internal/api/report/handler"
	reportRepository "github.com/Abhijit-without-h/ayush/internal/api/report/repository"
	reportService "github.com/Abhijit-without-h/ayush/internal/api/report/service"
	terminologyHandler "github.com/Abhijit-without-h/ayush/internal/api/terminology/handler"
	terminologyRepository "github.com/Abhijit-without-h/ayush/internal/api/terminology/repository"
	terminologyService "github.com/Abhijit-without-h/ayush/internal/api/terminology/service"
	"github.com/Abhijit-without-h/ayush/internal/middleware"
	"github.com/Abhijit-without-h/ayush/pkg/document"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
	"github.com/Abhijit-without-h/ayush/pkg/redis"
	"github.com/Abhijit-without-h/ayush/pkg/s3"
	"github.com/Abhijit-without-h/ayush/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Patient directory
	patientRepo := patientRepository.New(s.db, s.log)
	patientServices := patientService.New(s.log, patientRepo)
	patientHandlers := patientHandler.New(s.log, s.validator, s.middleware, patientServices)

	// Voice recognition sessions
	recognitionRepo := recognitionRepository.New(s.db, s.log)
	sessionServices := recognitionService.New(s.log, recognitionRepo, s.redisServer, s.utils, recognitionService.DefaultTimings())
	recognitionHandlers := recognitionHandler.New(s.log, s.validator, s.middleware, sessionServices)

	// Report drafting, assembly and archive
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.New(
		s.log,
		reportRepo,
		patientServices,
		s.redisServer,
		interpreter.New(),
		document.NewAssembler(),
		document.NewPDFRenderer(),
		s.s3Client,
		s.utils,
	)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	// NAMASTE / ICD-11 terminology
	terminologyRepo := terminologyRepository.New(s.db, s.log)
	terminologyServices := terminologyService.New(s.log, terminologyRepo)
	terminologyHandlers := terminologyHandler.New(s.log, s.validator, s.middleware, terminologyServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, patientHandlers, recognitionHandlers, reportHandlers, terminologyHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	router.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
