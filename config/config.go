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

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"8790"`

	// Database configurations
	Database     Database `envconfig:"DATABASE"`
	DBSchemaPath string   `envconfig:"DB_SCHEMA_PATH" default:"./internal/database/schema.sql"`

	// JWT Authentication configurations
	JWT JWT `envconfig:"JWT"`

	// Bootstrap administrator, seeded when the admin_users table is empty
	Admin Admin `envconfig:"ADMIN"`
}

// JWT holds JWT-specific configuration
type JWT struct {
	SecretKey string `envconfig:"SECRET_KEY" default:"your-secret-key-change-in-production"`
	Issuer    string `envconfig:"ISSUER" default:"krapi"`
	// Lifetime of issued admin tokens, in seconds
	AdminTokenTTL int `envconfig:"ADMIN_TOKEN_TTL" default:"86400"`
	// Lifetime of issued project-user session tokens, in seconds
	UserTokenTTL int `envconfig:"USER_TOKEN_TTL" default:"604800"`
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	// Use DATABASE_DB_PATH to override; keeping it distinct from the OS PATH variable.
	Path            string `envconfig:"DB_PATH" default:"./data/krapi.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"krapi"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether to run the schema DDL (CREATE TABLE, etc.) on startup.
	// Set to false when the DB user lacks DDL privileges (e.g. deployed Postgres with restricted role).
	// Env: DATABASE_EXECUTE_SCHEMA_DDL (default: true)
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// Admin holds the bootstrap administrator account configuration
type Admin struct {
	Email    string `envconfig:"EMAIL" default:"admin@krapi.local"`
	Password string `envconfig:"PASSWORD" default:"admin"`
	Name     string `envconfig:"NAME" default:"Administrator"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server struct.
// It uses sync.Once to ensure that the initialization logic is executed only once,
// making it safe for concurrent use. If there is an error during the initialization,
// the function will panic.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateAdminConfig(&settingInstance.Admin)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateAdminConfig ensures the bootstrap administrator account is usable.
func validateAdminConfig(cfg *Admin) error {
	if cfg.Email == "" {
		return fmt.Errorf("bootstrap admin email is not configured (ADMIN_EMAIL)")
	}
	if cfg.Password == "" {
		return fmt.Errorf("bootstrap admin password is not configured (ADMIN_PASSWORD)")
	}
	return nil
}
