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

package service

import (
	"encoding/json"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/model"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/utils"

	"github.com/google/uuid"
)

type CollectionService struct {
	collectionRepo repository.CollectionRepository
}

func NewCollectionService(collectionRepo repository.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo}
}

// CreateCollection creates a schema-typed container. Name is unique within
// the project.
func (s *CollectionService) CreateCollection(projectID string, req *dto.CreateCollectionRequest) (*dto.Collection, error) {
	existing, err := s.collectionRepo.GetCollectionByName(projectID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrCollectionExists
	}

	schema := dto.CollectionSchema{Fields: []dto.SchemaField{}}
	if req.Schema != nil {
		schema = *req.Schema
	}
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	indexes := req.Indexes
	if indexes == nil {
		indexes = []string{}
	}
	indexesJSON, err := json.Marshal(indexes)
	if err != nil {
		return nil, err
	}
	permissions := req.Permissions
	if permissions == nil {
		permissions = map[string][]string{}
	}
	permissionsJSON, err := json.Marshal(permissions)
	if err != nil {
		return nil, err
	}

	collection := &model.Collection{
		UUID:        uuid.New().String(),
		ProjectUUID: projectID,
		Name:        req.Name,
		Description: req.Description,
		Schema:      string(schemaJSON),
		Indexes:     string(indexesJSON),
		Permissions: string(permissionsJSON),
	}
	if err := s.collectionRepo.CreateCollection(collection); err != nil {
		return nil, err
	}
	return s.ModelToDTO(collection), nil
}

// GetCollectionByID retrieves one collection within a project
func (s *CollectionService) GetCollectionByID(id, projectID string) (*dto.Collection, error) {
	collection, err := s.collectionRepo.GetCollectionByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, constants.ErrCollectionNotFound
	}
	return s.ModelToDTO(collection), nil
}

// ListCollections retrieves a page of a project's collections
func (s *CollectionService) ListCollections(projectID string, limit, offset int) (*dto.CollectionListResponse, error) {
	limit, offset = utils.ClampPage(limit, offset)

	collections, err := s.collectionRepo.ListCollectionsByProject(projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.collectionRepo.CountCollectionsByProject(projectID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.Collection, 0, len(collections))
	for _, collection := range collections {
		list = append(list, s.ModelToDTO(collection))
	}
	return &dto.CollectionListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  int(total),
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}

// UpdateCollection applies a partial update. Renames re-check per-project
// name uniqueness.
func (s *CollectionService) UpdateCollection(id, projectID string, req *dto.UpdateCollectionRequest) (*dto.Collection, error) {
	collection, err := s.collectionRepo.GetCollectionByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, constants.ErrCollectionNotFound
	}

	if req.Name != nil && *req.Name != collection.Name {
		existing, err := s.collectionRepo.GetCollectionByName(projectID, *req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, constants.ErrCollectionExists
		}
		collection.Name = *req.Name
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.Schema != nil {
		schemaJSON, err := json.Marshal(req.Schema)
		if err != nil {
			return nil, err
		}
		collection.Schema = string(schemaJSON)
	}
	if req.Indexes != nil {
		indexesJSON, err := json.Marshal(req.Indexes)
		if err != nil {
			return nil, err
		}
		collection.Indexes = string(indexesJSON)
	}
	if req.Permissions != nil {
		permissionsJSON, err := json.Marshal(req.Permissions)
		if err != nil {
			return nil, err
		}
		collection.Permissions = string(permissionsJSON)
	}

	if err := s.collectionRepo.UpdateCollection(collection); err != nil {
		return nil, err
	}
	return s.ModelToDTO(collection), nil
}

// DeleteCollection removes a collection and its documents
func (s *CollectionService) DeleteCollection(id, projectID string) error {
	deleted, err := s.collectionRepo.DeleteCollection(id, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrCollectionNotFound
	}
	return nil
}

// ModelToDTO converts a stored collection to its API shape
func (s *CollectionService) ModelToDTO(collection *model.Collection) *dto.Collection {
	schema := dto.CollectionSchema{Fields: []dto.SchemaField{}}
	if collection.Schema != "" {
		if err := json.Unmarshal([]byte(collection.Schema), &schema); err != nil {
			utils.LogWarning("Failed to decode schema for collection " + collection.UUID)
		}
	}
	indexes := []string{}
	if collection.Indexes != "" {
		if err := json.Unmarshal([]byte(collection.Indexes), &indexes); err != nil {
			utils.LogWarning("Failed to decode indexes for collection " + collection.UUID)
		}
	}
	permissions := map[string][]string{}
	if collection.Permissions != "" {
		if err := json.Unmarshal([]byte(collection.Permissions), &permissions); err != nil {
			utils.LogWarning("Failed to decode permissions for collection " + collection.UUID)
		}
	}
	return &dto.Collection{
		ID:            collection.UUID,
		ProjectID:     collection.ProjectUUID,
		Name:          collection.Name,
		Description:   collection.Description,
		Schema:        schema,
		Indexes:       indexes,
		Permissions:   permissions,
		DocumentCount: collection.DocumentCount,
		CreatedAt:     collection.CreatedAt,
		UpdatedAt:     collection.UpdatedAt,
	}
}
