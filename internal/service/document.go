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

type DocumentService struct {
	documentRepo   repository.DocumentRepository
	collectionRepo repository.CollectionRepository
}

func NewDocumentService(documentRepo repository.DocumentRepository,
	collectionRepo repository.CollectionRepository) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		collectionRepo: collectionRepo,
	}
}

// CreateDocument persists a document under the collection's owning project.
// The repository resolves ownership and bumps the collection's
// document_count in the same transaction.
func (s *DocumentService) CreateDocument(collectionID, projectID string, req *dto.CreateDocumentRequest, actor string) (*dto.Document, error) {
	dataJSON, err := json.Marshal(req.Data)
	if err != nil {
		return nil, constants.ErrInvalidDocument
	}

	doc := &model.Document{
		UUID:           uuid.New().String(),
		CollectionUUID: collectionID,
		ProjectUUID:    projectID,
		Data:           string(dataJSON),
		CreatedBy:      actor,
		UpdatedBy:      actor,
	}
	created, err := s.documentRepo.CreateDocument(doc)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, constants.ErrCollectionNotFound
	}
	return s.ModelToDTO(doc), nil
}

// GetDocumentByID retrieves one document within a project
func (s *DocumentService) GetDocumentByID(id, projectID string) (*dto.Document, error) {
	doc, err := s.documentRepo.GetDocumentByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, constants.ErrDocumentNotFound
	}
	return s.ModelToDTO(doc), nil
}

// ListDocuments retrieves a page of a collection's documents, newest first
func (s *DocumentService) ListDocuments(collectionID, projectID string, limit, offset int) (*dto.DocumentListResponse, error) {
	collection, err := s.collectionRepo.GetCollectionByUUID(collectionID, projectID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, constants.ErrCollectionNotFound
	}

	limit, offset = utils.ClampPage(limit, offset)
	docs, err := s.documentRepo.ListDocumentsByCollection(collectionID, projectID, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.Document, 0, len(docs))
	for _, doc := range docs {
		list = append(list, s.ModelToDTO(doc))
	}
	return &dto.DocumentListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  collection.DocumentCount,
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}

// UpdateDocument replaces a document's data payload
func (s *DocumentService) UpdateDocument(id, projectID string, req *dto.UpdateDocumentRequest, actor string) (*dto.Document, error) {
	doc, err := s.documentRepo.GetDocumentByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, constants.ErrDocumentNotFound
	}

	dataJSON, err := json.Marshal(req.Data)
	if err != nil {
		return nil, constants.ErrInvalidDocument
	}
	doc.Data = string(dataJSON)
	doc.UpdatedBy = actor

	updated, err := s.documentRepo.UpdateDocument(doc)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, constants.ErrDocumentNotFound
	}
	return s.ModelToDTO(doc), nil
}

// DeleteDocument removes a document; the collection counter is decremented
// in the same transaction by the repository
func (s *DocumentService) DeleteDocument(id, projectID string) error {
	deleted, err := s.documentRepo.DeleteDocument(id, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrDocumentNotFound
	}
	return nil
}

// ModelToDTO converts a stored document to its API shape
func (s *DocumentService) ModelToDTO(doc *model.Document) *dto.Document {
	data := map[string]interface{}{}
	if doc.Data != "" {
		if err := json.Unmarshal([]byte(doc.Data), &data); err != nil {
			utils.LogWarning("Failed to decode data for document " + doc.UUID)
		}
	}
	return &dto.Document{
		ID:           doc.UUID,
		CollectionID: doc.CollectionUUID,
		ProjectID:    doc.ProjectUUID,
		Data:         data,
		CreatedBy:    doc.CreatedBy,
		UpdatedBy:    doc.UpdatedBy,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
