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
	"krapi-api/src/internal/middleware"

	"github.com/gin-gonic/gin"
)

// adminActor returns the attribution string for the authenticated admin
func adminActor(c *gin.Context) string {
	if admin := middleware.GetAdminContext(c); admin != nil {
		return "admin:" + admin.AdminID
	}
	return ""
}

// tenantActor returns the attribution string for the authenticated API key
func tenantActor(c *gin.Context) string {
	if tenant := middleware.GetTenantContext(c); tenant != nil {
		return "key:" + tenant.KeyID
	}
	return ""
}

// tenantProject returns the project the presented API key is pinned to.
// The api-key middleware guarantees it is set on keyed routes.
func tenantProject(c *gin.Context) string {
	if tenant := middleware.GetTenantContext(c); tenant != nil {
		return tenant.ProjectID
	}
	return ""
}
