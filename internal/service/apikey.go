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
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/model"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/utils"

	"github.com/google/uuid"
)

// apiKeyPrefix marks Krapi-issued key material on the wire
const apiKeyPrefix = "krapi_"

type APIKeyService struct {
	keyRepo     repository.APIKeyRepository
	projectRepo repository.ProjectRepository
}

func NewAPIKeyService(keyRepo repository.APIKeyRepository,
	projectRepo repository.ProjectRepository) *APIKeyService {
	return &APIKeyService{
		keyRepo:     keyRepo,
		projectRepo: projectRepo,
	}
}

// CreateAPIKey mints a new key for a project. The raw secret is returned
// once, in the create response, and never again.
func (s *APIKeyService) CreateAPIKey(projectID string, req *dto.CreateAPIKeyRequest) (*dto.APIKey, error) {
	project, err := s.projectRepo.GetProjectByUUID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	secret, err := generateKeySecret()
	if err != nil {
		return nil, err
	}

	permissions := req.Permissions
	if len(permissions) == 0 {
		permissions = []string{"*"}
	}
	permissionsJSON, err := json.Marshal(permissions)
	if err != nil {
		return nil, err
	}

	key := &model.APIKey{
		UUID:        uuid.New().String(),
		ProjectUUID: projectID,
		Name:        req.Name,
		KeyValue:    secret,
		Permissions: string(permissionsJSON),
		Status:      model.APIKeyStatusActive,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := s.keyRepo.CreateAPIKey(key); err != nil {
		return nil, err
	}

	out := s.ModelToDTO(key)
	out.Key = secret
	return out, nil
}

// ListAPIKeys retrieves all keys for a project. Secrets are withheld.
func (s *APIKeyService) ListAPIKeys(projectID string) (*dto.APIKeyListResponse, error) {
	project, err := s.projectRepo.GetProjectByUUID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	keys, err := s.keyRepo.ListAPIKeysByProject(projectID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.APIKey, 0, len(keys))
	for _, key := range keys {
		list = append(list, s.ModelToDTO(key))
	}
	return &dto.APIKeyListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

// DeleteAPIKey revokes a key permanently
func (s *APIKeyService) DeleteAPIKey(id, projectID string) error {
	deleted, err := s.keyRepo.DeleteAPIKey(id, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrAPIKeyNotFound
	}
	return nil
}

// generateKeySecret returns a prefixed 256-bit random secret
func generateKeySecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}

// ModelToDTO converts a stored key to its API shape without the secret
func (s *APIKeyService) ModelToDTO(key *model.APIKey) *dto.APIKey {
	permissions := []string{}
	if key.Permissions != "" {
		if err := json.Unmarshal([]byte(key.Permissions), &permissions); err != nil {
			utils.LogWarning("Failed to decode permissions for API key " + key.UUID)
		}
	}
	return &dto.APIKey{
		ID:          key.UUID,
		ProjectID:   key.ProjectUUID,
		Name:        key.Name,
		Permissions: permissions,
		Status:      key.Status,
		ExpiresAt:   key.ExpiresAt,
		LastUsed:    key.LastUsed,
		CreatedAt:   key.CreatedAt,
		UpdatedAt:   key.UpdatedAt,
	}
}
