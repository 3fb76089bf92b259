/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package server

import (
	"fmt"
	"net/http"
	"time"

	"krapi-api/src/config"
	"krapi-api/src/internal/database"
	"krapi-api/src/internal/dispatch"
	"krapi-api/src/internal/handler"
	"krapi-api/src/internal/middleware"
	"krapi-api/src/internal/model"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	router *gin.Engine
	db     *database.DB
	cfg    *config.Server
}

// StartServer wires the full stack: database, repositories, services,
// dispatcher, handlers and router.
func StartServer(cfg *config.Server) (*Server, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		utils.LogInfo("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)")
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepo(db)
	collectionRepo := repository.NewCollectionRepo(db)
	documentRepo := repository.NewDocumentRepo(db)
	userRepo := repository.NewProjectUserRepo(db)
	keyRepo := repository.NewAPIKeyRepo(db)
	adminRepo := repository.NewAdminUserRepo(db)
	fileRepo := repository.NewFileRepo(db)
	logRepo := repository.NewRequestLogRepo(db)

	// Seed the bootstrap administrator when the table is empty
	if err := seedDefaultAdmin(adminRepo, &cfg.Admin); err != nil {
		return nil, err
	}

	// Initialize services
	projectService := service.NewProjectService(projectRepo)
	collectionService := service.NewCollectionService(collectionRepo)
	documentService := service.NewDocumentService(documentRepo, collectionRepo)
	userService := service.NewProjectUserService(userRepo)
	apiKeyService := service.NewAPIKeyService(keyRepo, projectRepo)
	fileService := service.NewFileService(fileRepo)
	statsService := service.NewStatsService(projectRepo, collectionRepo, documentRepo, userRepo, fileRepo, logRepo)
	authService := service.NewAuthService(adminRepo, keyRepo, userRepo, cfg.JWT)

	dispatcher := dispatch.NewDispatcher(projectService, collectionService, documentService,
		userService, apiKeyService, fileService, statsService, authService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	apiKeyHandler := handler.NewAPIKeyHandler(apiKeyService)
	collectionHandler := handler.NewCollectionHandler(collectionService)
	documentHandler := handler.NewDocumentHandler(documentService)
	userHandler := handler.NewProjectUserHandler(userService)
	statsHandler := handler.NewStatsHandler(statsService)
	dispatchHandler := handler.NewDispatchHandler(dispatcher)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "x-api-key"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestLogMiddleware(logRepo))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	adminAuth := middleware.AdminAuthMiddleware(authService)
	apiKeyAuth := middleware.APIKeyAuthMiddleware(authService)

	// Public auth endpoints (verify carries its own api-key check)
	authHandler.RegisterRoutes(router, apiKeyAuth)

	// Admin surface: bearer token, re-validated against the DB per request
	adminGroup := router.Group("/admin", adminAuth)
	projectHandler.RegisterRoutes(adminGroup)
	apiKeyHandler.RegisterRoutes(adminGroup)
	statsHandler.RegisterAdminRoutes(adminGroup)

	// Tenant surface: x-api-key pins every call to the key's project
	tenantGroup := router.Group("", apiKeyAuth)
	collectionHandler.RegisterRoutes(tenantGroup)
	documentHandler.RegisterRoutes(tenantGroup)
	userHandler.RegisterRoutes(tenantGroup)
	statsHandler.RegisterTenantRoutes(tenantGroup)

	// Unified dispatch surface: either credential shape
	dispatchGroup := router.Group("", middleware.DispatchAuthMiddleware(authService))
	dispatchHandler.RegisterRoutes(dispatchGroup)

	return &Server{
		router: router,
		db:     db,
		cfg:    cfg,
	}, nil
}

// seedDefaultAdmin creates the configured bootstrap administrator when no
// admin accounts exist yet. Existing installs are never touched.
func seedDefaultAdmin(adminRepo repository.AdminUserRepository, cfg *config.Admin) error {
	count, err := adminRepo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &model.AdminUser{
		UUID:         uuid.New().String(),
		Email:        cfg.Email,
		PasswordHash: hash,
		Name:         cfg.Name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := adminRepo.CreateAdmin(admin); err != nil {
		return err
	}
	utils.LogInfo(fmt.Sprintf("Seeded default admin account: %s", cfg.Email))
	return nil
}

// Start runs the HTTP server on the configured port
func (s *Server) Start() error {
	addr := ":" + s.cfg.Port
	utils.LogInfo(fmt.Sprintf("Starting server on %s", addr))
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close releases the database connection
func (s *Server) Close() error {
	return s.db.Close()
}
