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
	"testing"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProjectRepo struct {
	stubProjectRepo
	created *model.Project
}

func (r *recordingProjectRepo) CreateProject(project *model.Project) error {
	r.created = project
	return nil
}

func TestCreateProjectDefaultsSettings(t *testing.T) {
	repo := &recordingProjectRepo{}
	svc := NewProjectService(repo)

	project, err := svc.CreateProject(&dto.CreateProjectRequest{Name: "alpha"}, "admin:admin-1")
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, model.ProjectStatusActive, repo.created.Status)
	assert.Equal(t, "admin:admin-1", repo.created.CreatedBy)

	// The settings blob is always present and carries the defaults
	var settings dto.ProjectSettings
	require.NoError(t, json.Unmarshal([]byte(repo.created.Settings), &settings))
	defaults := dto.DefaultProjectSettings()
	assert.Equal(t, defaults.StorageQuotaMB, settings.StorageQuotaMB)
	assert.Equal(t, defaults.RateLimitPerMin, settings.RateLimitPerMin)
	assert.Equal(t, defaults.MaxCollections, settings.MaxCollections)
}

func TestCreateProjectHonorsCallerID(t *testing.T) {
	repo := &recordingProjectRepo{}
	svc := NewProjectService(repo)

	project, err := svc.CreateProject(&dto.CreateProjectRequest{ID: "fixed-id", Name: "alpha"}, "admin:admin-1")
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", project.ID)
}

func TestCreateProjectDuplicateIDConflicts(t *testing.T) {
	repo := &recordingProjectRepo{}
	repo.project = &model.Project{UUID: "taken", Name: "existing", Settings: "{}"}
	svc := NewProjectService(repo)

	_, err := svc.CreateProject(&dto.CreateProjectRequest{ID: "taken", Name: "alpha"}, "admin:admin-1")
	assert.ErrorIs(t, err, constants.ErrProjectExists)
	assert.Nil(t, repo.created, "conflicting create must not reach the store")
}
