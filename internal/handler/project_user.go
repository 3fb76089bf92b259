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

type ProjectUserHandler struct {
	userService *service.ProjectUserService
}

func NewProjectUserHandler(userService *service.ProjectUserService) *ProjectUserHandler {
	return &ProjectUserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
func (h *ProjectUserHandler) ListUsers(c *gin.Context) {
	resp, err := h.userService.ListUsers(tenantProject(c), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

// CreateUser handles POST /users
func (h *ProjectUserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	user, err := h.userService.CreateUser(tenantProject(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, user)
}

// GetUser handles GET /users/:userId
func (h *ProjectUserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Param("userId"), tenantProject(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, user)
}

// UpdateUser handles PUT /users/:userId
func (h *ProjectUserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	user, err := h.userService.UpdateUser(c.Param("userId"), tenantProject(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, user)
}

// DeleteUser handles DELETE /users/:userId
func (h *ProjectUserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("userId"), tenantProject(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, "User deleted")
}

func (h *ProjectUserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/users")
	{
		userGroup.GET("", h.ListUsers)
		userGroup.POST("", h.CreateUser)
		userGroup.GET("/:userId", h.GetUser)
		userGroup.PUT("/:userId", h.UpdateUser)
		userGroup.DELETE("/:userId", h.DeleteUser)
	}
}
