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
	"testing"
	"time"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjectRepo struct {
	project *model.Project
}

func (s *stubProjectRepo) CreateProject(project *model.Project) error { return nil }
func (s *stubProjectRepo) GetProjectByUUID(uuid string) (*model.Project, error) {
	if s.project != nil && s.project.UUID == uuid {
		return s.project, nil
	}
	return nil, nil
}
func (s *stubProjectRepo) ListProjects(limit, offset int) ([]*model.Project, error) {
	return nil, nil
}
func (s *stubProjectRepo) CountProjects() (int, error)              { return 0, nil }
func (s *stubProjectRepo) UpdateProject(project *model.Project) error { return nil }
func (s *stubProjectRepo) DeleteProject(uuid string) (bool, error)  { return false, nil }

type stubCollectionRepo struct {
	count int64
}

func (s *stubCollectionRepo) CreateCollection(collection *model.Collection) error { return nil }
func (s *stubCollectionRepo) GetCollectionByUUID(uuid, projectUUID string) (*model.Collection, error) {
	return nil, nil
}
func (s *stubCollectionRepo) GetCollectionByName(projectUUID, name string) (*model.Collection, error) {
	return nil, nil
}
func (s *stubCollectionRepo) ListCollectionsByProject(projectUUID string, limit, offset int) ([]*model.Collection, error) {
	return nil, nil
}
func (s *stubCollectionRepo) CountCollectionsByProject(projectUUID string) (int64, error) {
	return s.count, nil
}
func (s *stubCollectionRepo) UpdateCollection(collection *model.Collection) error { return nil }
func (s *stubCollectionRepo) DeleteCollection(uuid, projectUUID string) (bool, error) {
	return false, nil
}

type stubDocumentRepo struct {
	count int64
}

func (s *stubDocumentRepo) CreateDocument(doc *model.Document) (bool, error) { return false, nil }
func (s *stubDocumentRepo) GetDocumentByUUID(uuid, projectUUID string) (*model.Document, error) {
	return nil, nil
}
func (s *stubDocumentRepo) ListDocumentsByCollection(collectionUUID, projectUUID string, limit, offset int) ([]*model.Document, error) {
	return nil, nil
}
func (s *stubDocumentRepo) CountDocumentsByCollection(collectionUUID string) (int64, error) {
	return 0, nil
}
func (s *stubDocumentRepo) CountDocumentsByProject(projectUUID string) (int64, error) {
	return s.count, nil
}
func (s *stubDocumentRepo) UpdateDocument(doc *model.Document) (bool, error)      { return false, nil }
func (s *stubDocumentRepo) DeleteDocument(uuid, projectUUID string) (bool, error) { return false, nil }

type stubFileRepo struct {
	count int64
	bytes int64
}

func (s *stubFileRepo) CreateFile(file *model.FileRecord) error { return nil }
func (s *stubFileRepo) GetFileByUUID(uuid, projectUUID string) (*model.FileRecord, error) {
	return nil, nil
}
func (s *stubFileRepo) ListFilesByProject(projectUUID string, limit, offset int) ([]*model.FileRecord, error) {
	return nil, nil
}
func (s *stubFileRepo) FileStatsByProject(projectUUID string) (int64, int64, error) {
	return s.count, s.bytes, nil
}
func (s *stubFileRepo) DeleteFile(uuid, projectUUID string) (bool, error) { return false, nil }

type stubLogRepo struct {
	total     int64
	today     int64
	lastSince time.Time
}

func (s *stubLogRepo) InsertLog(entry *model.RequestLog) error { return nil }
func (s *stubLogRepo) CountByProject(projectUUID string) (int64, error) {
	return s.total, nil
}
func (s *stubLogRepo) CountByProjectSince(projectUUID string, since time.Time) (int64, error) {
	s.lastSince = since
	return s.today, nil
}

type stubUserCountRepo struct {
	mockUserRepo
	count int64
}

func (s *stubUserCountRepo) CountUsersByProject(projectUUID string) (int64, error) {
	return s.count, nil
}

func TestProjectStatsAggregates(t *testing.T) {
	logRepo := &stubLogRepo{total: 120, today: 7}
	svc := NewStatsService(
		&stubProjectRepo{project: &model.Project{UUID: "proj-1", Name: "alpha"}},
		&stubCollectionRepo{count: 4},
		&stubDocumentRepo{count: 250},
		&stubUserCountRepo{count: 12},
		&stubFileRepo{count: 3, bytes: 4096},
		logRepo,
	)

	stats, err := svc.ProjectStats("proj-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Collections)
	assert.Equal(t, int64(250), stats.Documents)
	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(3), stats.Files)
	assert.Equal(t, int64(4096), stats.StorageBytes)
	assert.Equal(t, int64(7), stats.RequestsToday)
	assert.Equal(t, int64(120), stats.RequestsTotal)

	// "Today" starts at UTC midnight, independent of host timezone
	wantBoundary := time.Now().UTC().Truncate(24 * time.Hour)
	assert.Equal(t, wantBoundary, logRepo.lastSince)
}

func TestProjectStatsUnknownProject(t *testing.T) {
	svc := NewStatsService(&stubProjectRepo{}, &stubCollectionRepo{}, &stubDocumentRepo{},
		&stubUserCountRepo{}, &stubFileRepo{}, &stubLogRepo{})

	_, err := svc.ProjectStats("missing")
	assert.ErrorIs(t, err, constants.ErrProjectNotFound)
}
