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

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProject creates a tenant with a defaulted settings blob. A
// caller-supplied id that already exists is a hard conflict, never an
// idempotent no-op.
func (s *ProjectService) CreateProject(req *dto.CreateProjectRequest, createdBy string) (*dto.Project, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	} else {
		existing, err := s.projectRepo.GetProjectByUUID(id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, constants.ErrProjectExists
		}
	}

	settings := dto.DefaultProjectSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		UUID:        id,
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
		Settings:    string(settingsJSON),
		Status:      model.ProjectStatusActive,
		CreatedBy:   createdBy,
	}
	if err := s.projectRepo.CreateProject(project); err != nil {
		return nil, err
	}

	return s.ModelToDTO(project), nil
}

// GetProjectByID retrieves one project
func (s *ProjectService) GetProjectByID(id string) (*dto.Project, error) {
	project, err := s.projectRepo.GetProjectByUUID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}
	return s.ModelToDTO(project), nil
}

// ListProjects retrieves a page of projects plus the total count
func (s *ProjectService) ListProjects(limit, offset int) (*dto.ProjectListResponse, error) {
	limit, offset = utils.ClampPage(limit, offset)

	projects, err := s.projectRepo.ListProjects(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.projectRepo.CountProjects()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.Project, 0, len(projects))
	for _, project := range projects {
		list = append(list, s.ModelToDTO(project))
	}
	return &dto.ProjectListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}

// UpdateProject applies a partial update to a project
func (s *ProjectService) UpdateProject(id string, req *dto.UpdateProjectRequest) (*dto.Project, error) {
	project, err := s.projectRepo.GetProjectByUUID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Domain != nil {
		project.Domain = *req.Domain
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Settings != nil {
		settingsJSON, err := json.Marshal(req.Settings)
		if err != nil {
			return nil, err
		}
		project.Settings = string(settingsJSON)
	}

	if err := s.projectRepo.UpdateProject(project); err != nil {
		return nil, err
	}
	return s.ModelToDTO(project), nil
}

// DeleteProject removes a tenant and cascades to every entity below it
func (s *ProjectService) DeleteProject(id string) error {
	deleted, err := s.projectRepo.DeleteProject(id)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrProjectNotFound
	}
	return nil
}

// ModelToDTO converts a stored project to its API shape. A corrupt settings
// blob falls back to defaults rather than failing the read.
func (s *ProjectService) ModelToDTO(project *model.Project) *dto.Project {
	settings := dto.DefaultProjectSettings()
	if project.Settings != "" {
		if err := json.Unmarshal([]byte(project.Settings), &settings); err != nil {
			utils.LogWarning("Failed to decode project settings for " + project.UUID + ", using defaults")
			settings = dto.DefaultProjectSettings()
		}
	}
	return &dto.Project{
		ID:          project.UUID,
		Name:        project.Name,
		Description: project.Description,
		Domain:      project.Domain,
		Settings:    settings,
		Status:      project.Status,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
