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

// Document represents a single JSON record as exposed by the API
type Document struct {
	ID           string                 `json:"id"`
	CollectionID string                 `json:"collection_id"`
	ProjectID    string                 `json:"project_id"`
	Data         map[string]interface{} `json:"data"`
	CreatedBy    string                 `json:"created_by,omitempty"`
	UpdatedBy    string                 `json:"updated_by,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// CreateDocumentRequest is the payload for POST .../documents
type CreateDocumentRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// UpdateDocumentRequest is the payload for PUT .../documents/:documentId
type UpdateDocumentRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// DocumentListResponse wraps a page of documents
type DocumentListResponse struct {
	Count      int         `json:"count"`
	List       []*Document `json:"list"`
	Pagination Pagination  `json:"pagination"`
}
