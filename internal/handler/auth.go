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

package handler

import (
	"net/http"

	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/middleware"
	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AdminLogin handles POST /auth/login and issues an admin bearer token
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	resp, err := h.authService.LoginAdmin(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, resp)
}

// UserLogin handles POST /auth/user/login and issues a project-user session
// token. project_id is mandatory: end-user identities exist per project.
func (h *AuthHandler) UserLogin(c *gin.Context) {
	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	token, user, err := h.authService.LoginProjectUser(req.ProjectID, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"token": token, "user": user})
}

// VerifyKey handles POST /auth/verify. The api-key middleware has already
// resolved the key; this just echoes the tenant identity back.
func (h *AuthHandler) VerifyKey(c *gin.Context) {
	tenant := middleware.GetTenantContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorEnvelope("x-api-key header is required"))
		return
	}

	utils.RespondOK(c, &dto.VerifyKeyResponse{
		ProjectID:   tenant.ProjectID,
		KeyName:     tenant.KeyName,
		Permissions: tenant.Permissions,
	})
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine, apiKeyAuth gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.AdminLogin)
		authGroup.POST("/user/login", h.UserLogin)
		authGroup.POST("/verify", apiKeyAuth, h.VerifyKey)
	}
}
