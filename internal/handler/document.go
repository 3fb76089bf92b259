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

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// ListDocuments handles GET /collections/:collectionId/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	resp, err := h.documentService.ListDocuments(c.Param("collectionId"), tenantProject(c),
		queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

// CreateDocument handles POST /collections/:collectionId/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	doc, err := h.documentService.CreateDocument(c.Param("collectionId"), tenantProject(c), &req, tenantActor(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, doc)
}

// GetDocument handles GET /collections/:collectionId/documents/:documentId
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByID(c.Param("documentId"), tenantProject(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, doc)
}

// UpdateDocument handles PUT /collections/:collectionId/documents/:documentId.
// The data blob is replaced wholesale, not merged.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Param("documentId"), tenantProject(c), &req, tenantActor(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, doc)
}

// DeleteDocument handles DELETE /collections/:collectionId/documents/:documentId
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Param("documentId"), tenantProject(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, "Document deleted")
}

func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documentGroup := rg.Group("/collections/:collectionId/documents")
	{
		documentGroup.GET("", h.ListDocuments)
		documentGroup.POST("", h.CreateDocument)
		documentGroup.GET("/:documentId", h.GetDocument)
		documentGroup.PUT("/:documentId", h.UpdateDocument)
		documentGroup.DELETE("/:documentId", h.DeleteDocument)
	}
}
