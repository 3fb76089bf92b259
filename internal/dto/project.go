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

// ProjectSettings is the per-tenant configuration blob. Exactly one settings
// blob exists per project; absent fields are defaulted at creation.
type ProjectSettings struct {
	Auth            AuthSettings `json:"auth"`
	StorageQuotaMB  int64        `json:"storage_quota_mb"`
	RateLimitPerMin int          `json:"rate_limit_per_min"`
	MaxCollections  int          `json:"max_collections"`
}

// AuthSettings controls project end-user sign-in behavior
type AuthSettings struct {
	AllowSignup              bool `json:"allow_signup"`
	RequireEmailVerification bool `json:"require_email_verification"`
}

// DefaultProjectSettings returns the settings applied when a project is
// created without an explicit settings blob.
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		Auth: AuthSettings{
			AllowSignup:              true,
			RequireEmailVerification: false,
		},
		StorageQuotaMB:  1024,
		RateLimitPerMin: 600,
		MaxCollections:  100,
	}
}

// Project represents a tenant as exposed by the API
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Domain      string          `json:"domain,omitempty"`
	Settings    ProjectSettings `json:"settings"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateProjectRequest is the payload for POST /admin/projects. ID is
// normally server-assigned; supplying one that already exists is a conflict.
type CreateProjectRequest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Description string           `json:"description"`
	Domain      string           `json:"domain"`
	Settings    *ProjectSettings `json:"settings"`
}

// UpdateProjectRequest is the payload for PUT /admin/projects/:projectId
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Domain      *string          `json:"domain"`
	Settings    *ProjectSettings `json:"settings"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// ProjectListResponse wraps a page of projects
type ProjectListResponse struct {
	Count      int        `json:"count"`
	List       []*Project `json:"list"`
	Pagination Pagination `json:"pagination"`
}
