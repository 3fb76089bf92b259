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

// Collection is a named, schema-typed container of documents scoped to one
// project. Name is unique within the project. DocumentCount is a cached
// counter maintained transactionally on document create/delete.
type Collection struct {
	UUID          string    `json:"uuid" db:"uuid"`
	ProjectUUID   string    `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Schema        string    `json:"schema" db:"schema"`           // JSON field list
	Indexes       string    `json:"indexes" db:"indexes"`         // JSON array
	Permissions   string    `json:"permissions" db:"permissions"` // JSON per-operation actor lists
	DocumentCount int       `json:"document_count" db:"document_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
