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

// API key status values
const (
	APIKeyStatusActive   = "active"
	APIKeyStatusInactive = "inactive"
)

// APIKey is a bearer secret scoped to one project with an allow-list of
// permissions. A key is usable only while status is active and ExpiresAt, if
// set, is in the future; every successful use advances LastUsed.
type APIKey struct {
	UUID        string     `json:"uuid" db:"uuid"`
	ProjectUUID string     `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	Name        string     `json:"name" db:"name"`
	KeyValue    string     `json:"-" db:"key_value"`
	Permissions string     `json:"permissions" db:"permissions"` // JSON array
	Status      string     `json:"status" db:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	LastUsed    *time.Time `json:"last_used,omitempty" db:"last_used"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the APIKey model
func (APIKey) TableName() string {
	return "api_keys"
}
