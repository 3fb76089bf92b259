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
	"time"

	"krapi-api/src/internal/model"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogMiddleware appends one api_request_logs row per handled request.
// Attribution is read after the handler chain runs, so rows carry whatever
// identity the auth middlewares resolved. A failed insert is logged and never
// fails the request.
func RequestLogMiddleware(logRepo repository.RequestLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := &model.RequestLog{
			UUID:       uuid.New().String(),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			LatencyMS:  time.Since(start).Milliseconds(),
			CreatedAt:  time.Now().UTC(),
		}
		if tenant := GetTenantContext(c); tenant != nil {
			entry.ProjectUUID = &tenant.ProjectID
			entry.APIKeyUUID = &tenant.KeyID
		}

		if err := logRepo.InsertLog(entry); err != nil {
			utils.LogError("Failed to record request log", err)
		}
	}
}
