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

type CollectionHandler struct {
	collectionService *service.CollectionService
}

func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

// ListCollections handles GET /collections
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	resp, err := h.collectionService.ListCollections(tenantProject(c), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

// CreateCollection handles POST /collections
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	collection, err := h.collectionService.CreateCollection(tenantProject(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, collection)
}

// GetCollection handles GET /collections/:collectionId
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	collection, err := h.collectionService.GetCollectionByID(c.Param("collectionId"), tenantProject(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, collection)
}

// UpdateCollection handles PUT /collections/:collectionId
func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	var req dto.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	collection, err := h.collectionService.UpdateCollection(c.Param("collectionId"), tenantProject(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, collection)
}

// DeleteCollection handles DELETE /collections/:collectionId. Documents in
// the collection are removed with it.
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	if err := h.collectionService.DeleteCollection(c.Param("collectionId"), tenantProject(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, "Collection deleted")
}

func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	collectionGroup := rg.Group("/collections")
	{
		collectionGroup.GET("", h.ListCollections)
		collectionGroup.POST("", h.CreateCollection)
		collectionGroup.GET("/:collectionId", h.GetCollection)
		collectionGroup.PUT("/:collectionId", h.UpdateCollection)
		collectionGroup.DELETE("/:collectionId", h.DeleteCollection)
	}
}
