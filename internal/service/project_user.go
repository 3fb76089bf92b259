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

type ProjectUserService struct {
	userRepo repository.ProjectUserRepository
}

func NewProjectUserService(userRepo repository.ProjectUserRepository) *ProjectUserService {
	return &ProjectUserService{userRepo: userRepo}
}

// CreateUser registers a project end-user. Email is unique per project.
func (s *ProjectUserService) CreateUser(projectID string, req *dto.CreateUserRequest) (*dto.ProjectUser, error) {
	existing, err := s.userRepo.GetUserByEmail(projectID, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	prefs := req.Prefs
	if prefs == nil {
		prefs = map[string]interface{}{}
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}

	user := &model.ProjectUser{
		UUID:           uuid.New().String(),
		ProjectUUID:    projectID,
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		IsVerified:     false,
		IsActive:       true,
		OAuthProviders: "[]",
		Preferences:    string(prefsJSON),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return s.ModelToDTO(user), nil
}

// GetUserByID retrieves one end-user within a project
func (s *ProjectUserService) GetUserByID(id, projectID string) (*dto.ProjectUser, error) {
	user, err := s.userRepo.GetUserByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}
	return s.ModelToDTO(user), nil
}

// ListUsers retrieves a page of a project's end-users
func (s *ProjectUserService) ListUsers(projectID string, limit, offset int) (*dto.UserListResponse, error) {
	limit, offset = utils.ClampPage(limit, offset)

	users, err := s.userRepo.ListUsersByProject(projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.CountUsersByProject(projectID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ProjectUser, 0, len(users))
	for _, user := range users {
		list = append(list, s.ModelToDTO(user))
	}
	return &dto.UserListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  int(total),
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}

// UpdateUser applies a partial update to an end-user
func (s *ProjectUserService) UpdateUser(id, projectID string, req *dto.UpdateUserRequest) (*dto.ProjectUser, error) {
	user, err := s.userRepo.GetUserByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Preferences != nil {
		prefsJSON, err := json.Marshal(req.Preferences)
		if err != nil {
			return nil, err
		}
		user.Preferences = string(prefsJSON)
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return s.ModelToDTO(user), nil
}

// DeleteUser removes an end-user from a project
func (s *ProjectUserService) DeleteUser(id, projectID string) error {
	deleted, err := s.userRepo.DeleteUser(id, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrUserNotFound
	}
	return nil
}

// ModelToDTO converts a stored user to its API shape; the password hash
// never leaves the service layer
func (s *ProjectUserService) ModelToDTO(user *model.ProjectUser) *dto.ProjectUser {
	providers := []string{}
	if user.OAuthProviders != "" {
		if err := json.Unmarshal([]byte(user.OAuthProviders), &providers); err != nil {
			utils.LogWarning("Failed to decode oauth providers for user " + user.UUID)
		}
	}
	prefs := map[string]interface{}{}
	if user.Preferences != "" {
		if err := json.Unmarshal([]byte(user.Preferences), &prefs); err != nil {
			utils.LogWarning("Failed to decode preferences for user " + user.UUID)
		}
	}
	return &dto.ProjectUser{
		ID:             user.UUID,
		ProjectID:      user.ProjectUUID,
		Email:          user.Email,
		Name:           user.Name,
		IsVerified:     user.IsVerified,
		IsActive:       user.IsActive,
		OAuthProviders: providers,
		Preferences:    prefs,
		LastLogin:      user.LastLogin,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
