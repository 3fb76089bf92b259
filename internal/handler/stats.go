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
	"krapi-api/src/internal/service"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// TenantStats handles GET /stats for the calling key's project
func (h *StatsHandler) TenantStats(c *gin.Context) {
	stats, err := h.statsService.ProjectStats(tenantProject(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, stats)
}

// AdminProjectStats handles GET /admin/projects/:projectId/stats
func (h *StatsHandler) AdminProjectStats(c *gin.Context) {
	stats, err := h.statsService.ProjectStats(c.Param("projectId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, stats)
}

// RegisterTenantRoutes mounts the key-scoped stats endpoint
func (h *StatsHandler) RegisterTenantRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.TenantStats)
}

// RegisterAdminRoutes mounts the admin per-project stats endpoint
func (h *StatsHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:projectId/stats", h.AdminProjectStats)
}
