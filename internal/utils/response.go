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

package utils

import (
	"net/http"

	"krapi-api/src/internal/dto"

	"github.com/gin-gonic/gin"
)

// NewErrorEnvelope creates the standard error response body
func NewErrorEnvelope(message string, description ...string) dto.Envelope {
	env := dto.Envelope{
		Success: false,
		Error:   message,
	}
	if len(description) > 0 {
		env.Message = description[0]
	}
	return env
}

// RespondOK writes a 200 success envelope
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: data})
}

// RespondCreated writes a 201 success envelope
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Envelope{Success: true, Data: data})
}

// RespondMessage writes a 200 success envelope with a message and no data
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message})
}

// RespondError translates any error into its HTTP status and error envelope
func RespondError(c *gin.Context, err error) {
	status, env := GetErrorResponse(err)
	c.JSON(status, env)
}
