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

// Document is an opaque JSON payload scoped to exactly one collection and,
// transitively, one project. ProjectUUID always matches the owning
// collection's project; the repository derives it rather than trusting input.
type Document struct {
	UUID           string    `json:"uuid" db:"uuid"`
	CollectionUUID string    `json:"collection_id" db:"collection_uuid"` // FK to Collection.UUID
	ProjectUUID    string    `json:"project_id" db:"project_uuid"`       // FK to Project.UUID
	Data           string    `json:"data" db:"data"`                     // opaque JSON
	CreatedBy      string    `json:"created_by" db:"created_by"`
	UpdatedBy      string    `json:"updated_by" db:"updated_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
