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
	"time"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/repository"
)

// StatsService derives per-project aggregates from the store. Read-only.
type StatsService struct {
	projectRepo    repository.ProjectRepository
	collectionRepo repository.CollectionRepository
	documentRepo   repository.DocumentRepository
	userRepo       repository.ProjectUserRepository
	fileRepo       repository.FileRepository
	logRepo        repository.RequestLogRepository
}

func NewStatsService(projectRepo repository.ProjectRepository,
	collectionRepo repository.CollectionRepository,
	documentRepo repository.DocumentRepository,
	userRepo repository.ProjectUserRepository,
	fileRepo repository.FileRepository,
	logRepo repository.RequestLogRepository) *StatsService {
	return &StatsService{
		projectRepo:    projectRepo,
		collectionRepo: collectionRepo,
		documentRepo:   documentRepo,
		userRepo:       userRepo,
		fileRepo:       fileRepo,
		logRepo:        logRepo,
	}
}

// ProjectStats computes usage counters for one project. "Today" starts at
// UTC midnight so every instance reports the same boundary regardless of
// host timezone.
func (s *StatsService) ProjectStats(projectID string) (*dto.ProjectStats, error) {
	project, err := s.projectRepo.GetProjectByUUID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	collections, err := s.collectionRepo.CountCollectionsByProject(projectID)
	if err != nil {
		return nil, err
	}
	documents, err := s.documentRepo.CountDocumentsByProject(projectID)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.CountUsersByProject(projectID)
	if err != nil {
		return nil, err
	}
	files, storageBytes, err := s.fileRepo.FileStatsByProject(projectID)
	if err != nil {
		return nil, err
	}

	utcMidnight := time.Now().UTC().Truncate(24 * time.Hour)
	requestsToday, err := s.logRepo.CountByProjectSince(projectID, utcMidnight)
	if err != nil {
		return nil, err
	}
	requestsTotal, err := s.logRepo.CountByProject(projectID)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectStats{
		ProjectID:     projectID,
		Collections:   collections,
		Documents:     documents,
		Users:         users,
		Files:         files,
		StorageBytes:  storageBytes,
		RequestsToday: requestsToday,
		RequestsTotal: requestsTotal,
	}, nil
}
