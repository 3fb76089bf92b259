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
	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type APIKeyHandler struct {
	apiKeyService *service.APIKeyService
}

func NewAPIKeyHandler(apiKeyService *service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
	}
}

// ListAPIKeys handles GET /admin/projects/:projectId/keys. Key secrets are
// never returned here, only metadata.
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	resp, err := h.apiKeyService.ListAPIKeys(c.Param("projectId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

// CreateAPIKey handles POST /admin/projects/:projectId/keys. The response is
// the only time the key secret is visible.
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	key, err := h.apiKeyService.CreateAPIKey(c.Param("projectId"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, key)
}

// DeleteAPIKey handles DELETE /admin/projects/:projectId/keys/:keyId
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	if err := h.apiKeyService.DeleteAPIKey(c.Param("keyId"), c.Param("projectId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, "API key deleted")
}

func (h *APIKeyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	keyGroup := rg.Group("/projects/:projectId/keys")
	{
		keyGroup.GET("", h.ListAPIKeys)
		keyGroup.POST("", h.CreateAPIKey)
		keyGroup.DELETE("/:keyId", h.DeleteAPIKey)
	}
}
