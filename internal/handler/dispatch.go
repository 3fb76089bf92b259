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
	"encoding/json"
	"net/http"

	"krapi-api/src/internal/dispatch"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/middleware"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	dispatcher *dispatch.Dispatcher
}

func NewDispatchHandler(dispatcher *dispatch.Dispatcher) *DispatchHandler {
	return &DispatchHandler{
		dispatcher: dispatcher,
	}
}

// Dispatch handles POST /api: a JSON {operation, resource, action, params}
// envelope routed to exactly one handler.
func (h *DispatchHandler) Dispatch(c *gin.Context) {
	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", utils.FormatValidationError(err)))
		return
	}

	h.execute(c, &req)
}

// DispatchQuery handles GET /api, mirroring the POST envelope onto query
// parameters. params is given either as a JSON-encoded "params" value or as
// plain query pairs.
func (h *DispatchHandler) DispatchQuery(c *gin.Context) {
	req := dto.DispatchRequest{
		Operation: c.Query("operation"),
		Resource:  c.Query("resource"),
		Action:    c.Query("action"),
	}
	if req.Operation == "" || req.Resource == "" || req.Action == "" {
		c.JSON(http.StatusBadRequest,
			utils.NewErrorEnvelope("Bad Request", "operation, resource and action query parameters are required"))
		return
	}

	if raw := c.Query("params"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Params); err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorEnvelope("Bad Request", "params must be a JSON object"))
			return
		}
	} else {
		req.Params = map[string]interface{}{}
		for name, values := range c.Request.URL.Query() {
			switch name {
			case "operation", "resource", "action":
				continue
			}
			if len(values) > 0 {
				req.Params[name] = values[0]
			}
		}
	}

	h.execute(c, &req)
}

func (h *DispatchHandler) execute(c *gin.Context, req *dto.DispatchRequest) {
	ctx := &dispatch.Context{
		Admin:  middleware.GetAdminContext(c),
		Tenant: middleware.GetTenantContext(c),
	}
	ctx.IsAdmin = ctx.Admin != nil

	result, err := h.dispatcher.Dispatch(ctx, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, result)
}

func (h *DispatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/api", h.Dispatch)
	rg.GET("/api", h.DispatchQuery)
}
