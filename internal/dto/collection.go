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

// SchemaField declares one field of a collection schema
type SchemaField struct {
	Name     string      `json:"name" binding:"required"`
	Type     string      `json:"type" binding:"required,oneof=string number boolean object array datetime"`
	Required bool        `json:"required"`
	Default  interface{} `json:"default,omitempty"`
}

// CollectionSchema is the declared field list of a collection
type CollectionSchema struct {
	Fields []SchemaField `json:"fields"`
}

// Collection represents a schema-typed document container as exposed by the API
type Collection struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Schema        CollectionSchema    `json:"schema"`
	Indexes       []string            `json:"indexes"`
	Permissions   map[string][]string `json:"permissions"`
	DocumentCount int                 `json:"document_count"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CreateCollectionRequest is the payload for POST /collections
type CreateCollectionRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=100"`
	Description string              `json:"description"`
	Schema      *CollectionSchema   `json:"schema"`
	Indexes     []string            `json:"indexes"`
	Permissions map[string][]string `json:"permissions"`
}

// UpdateCollectionRequest is the payload for PUT /collections/:collectionId
type UpdateCollectionRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Schema      *CollectionSchema   `json:"schema"`
	Indexes     []string            `json:"indexes"`
	Permissions map[string][]string `json:"permissions"`
}

// CollectionListResponse wraps a page of collections
type CollectionListResponse struct {
	Count      int           `json:"count"`
	List       []*Collection `json:"list"`
	Pagination Pagination    `json:"pagination"`
}
