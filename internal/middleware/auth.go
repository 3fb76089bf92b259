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

package middleware

import (
	"net/http"
	"strings"

	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares and read by handlers
const (
	ContextAdmin  = "auth.admin"
	ContextTenant = "auth.tenant"
)

// AdminAuthMiddleware authenticates an administrator bearer token. The token
// is re-checked against the admin_users table on every request, so
// deactivating an admin takes effect immediately even while issued tokens
// are still within their validity window.
func AdminAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, utils.NewErrorEnvelope("Authorization header is required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized,
				utils.NewErrorEnvelope("Invalid authorization header format. Expected: Bearer <token>"))
			c.Abort()
			return
		}

		admin, err := auth.AuthenticateAdminToken(tokenString)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdmin, admin)
		c.Next()
	}
}

// APIKeyAuthMiddleware authenticates the x-api-key header and pins the
// request to the key's project. The key must be active and unexpired; a
// successful lookup advances last_used.
func APIKeyAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyValue := c.GetHeader("x-api-key")
		if keyValue == "" {
			c.JSON(http.StatusUnauthorized, utils.NewErrorEnvelope("x-api-key header is required"))
			c.Abort()
			return
		}

		tenant, err := auth.AuthenticateAPIKey(keyValue)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextTenant, tenant)
		c.Next()
	}
}

// DispatchAuthMiddleware accepts either credential shape for the unified
// /api endpoint: an admin bearer token or a project API key. At least one
// must resolve.
func DispatchAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyValue := c.GetHeader("x-api-key"); keyValue != "" {
			tenant, err := auth.AuthenticateAPIKey(keyValue)
			if err != nil {
				utils.RespondError(c, err)
				c.Abort()
				return
			}
			c.Set(ContextTenant, tenant)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				c.JSON(http.StatusUnauthorized,
					utils.NewErrorEnvelope("Invalid authorization header format. Expected: Bearer <token>"))
				c.Abort()
				return
			}
			admin, err := auth.AuthenticateAdminToken(tokenString)
			if err != nil {
				utils.RespondError(c, err)
				c.Abort()
				return
			}
			c.Set(ContextAdmin, admin)
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized,
			utils.NewErrorEnvelope("Authentication required", "Provide an x-api-key header or a Bearer token"))
		c.Abort()
	}
}

// GetAdminContext returns the authenticated admin set by AdminAuthMiddleware
func GetAdminContext(c *gin.Context) *service.AdminContext {
	v, ok := c.Get(ContextAdmin)
	if !ok {
		return nil
	}
	admin, _ := v.(*service.AdminContext)
	return admin
}

// GetTenantContext returns the authenticated tenant set by APIKeyAuthMiddleware
func GetTenantContext(c *gin.Context) *service.TenantContext {
	v, ok := c.Get(ContextTenant)
	if !ok {
		return nil
	}
	tenant, _ := v.(*service.TenantContext)
	return tenant
}
