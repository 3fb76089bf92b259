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

package model

import (
	"time"
)

// ProjectUser is an end-user of one project's application, distinct from the
// administrator identity space. Email is unique within the project.
type ProjectUser struct {
	UUID           string     `json:"uuid" db:"uuid"`
	ProjectUUID    string     `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Name           string     `json:"name" db:"name"`
	IsVerified     bool       `json:"is_verified" db:"is_verified"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	OAuthProviders string     `json:"oauth_providers" db:"oauth_providers"` // JSON array
	Preferences    string     `json:"preferences" db:"preferences"`         // JSON blob
	LastLogin      *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the ProjectUser model
func (ProjectUser) TableName() string {
	return "project_users"
}
