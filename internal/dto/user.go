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

// ProjectUser represents a project end-user as exposed by the API. The
// password hash never crosses this boundary.
type ProjectUser struct {
	ID             string                 `json:"id"`
	ProjectID      string                 `json:"project_id"`
	Email          string                 `json:"email"`
	Name           string                 `json:"name,omitempty"`
	IsVerified     bool                   `json:"is_verified"`
	IsActive       bool                   `json:"is_active"`
	OAuthProviders []string               `json:"oauth_providers"`
	Preferences    map[string]interface{} `json:"preferences"`
	LastLogin      *time.Time             `json:"last_login,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// CreateUserRequest is the payload for POST /users
type CreateUserRequest struct {
	Email    string                 `json:"email" binding:"required,email"`
	Password string                 `json:"password" binding:"required,min=8"`
	Name     string                 `json:"name"`
	Prefs    map[string]interface{} `json:"preferences"`
}

// UpdateUserRequest is the payload for PUT /users/:userId
type UpdateUserRequest struct {
	Name        *string                `json:"name"`
	IsVerified  *bool                  `json:"is_verified"`
	IsActive    *bool                  `json:"is_active"`
	Preferences map[string]interface{} `json:"preferences"`
}

// UserListResponse wraps a page of project users
type UserListResponse struct {
	Count      int            `json:"count"`
	List       []*ProjectUser `json:"list"`
	Pagination Pagination     `json:"pagination"`
}
