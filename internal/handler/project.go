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
	"strconv"

	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// queryInt reads an integer query parameter, zero when absent or malformed
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// ListProjects handles GET /admin/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	resp, err := h.projectService.ListProjects(queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

// CreateProject handles POST /admin/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	project, err := h.projectService.CreateProject(&req, adminActor(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, project)
}

// GetProject handles GET /admin/projects/:projectId
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Param("projectId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, project)
}

// UpdateProject handles PUT /admin/projects/:projectId
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	project, err := h.projectService.UpdateProject(c.Param("projectId"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, project)
}

// DeleteProject handles DELETE /admin/projects/:projectId. Collections,
// documents, users, keys, files and logs under the project go with it.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Param("projectId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, "Project deleted")
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projectGroup := rg.Group("/projects")
	{
		projectGroup.GET("", h.ListProjects)
		projectGroup.POST("", h.CreateProject)
		projectGroup.GET("/:projectId", h.GetProject)
		projectGroup.PUT("/:projectId", h.UpdateProject)
		projectGroup.DELETE("/:projectId", h.DeleteProject)
	}
}
