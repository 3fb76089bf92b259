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

package dto

import (
	"time"
)

// APIKey represents a project API key as exposed by the API. Key carries the
// raw secret and is populated only in the create response.
type APIKey struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Key         string     `json:"key,omitempty"`
	Permissions []string   `json:"permissions"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateAPIKeyRequest is the payload for POST /admin/projects/:projectId/keys
type CreateAPIKeyRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Permissions []string   `json:"permissions"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// APIKeyListResponse wraps a page of API keys
type APIKeyListResponse struct {
	Count      int        `json:"count"`
	List       []*APIKey  `json:"list"`
	Pagination Pagination `json:"pagination"`
}
