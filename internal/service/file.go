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
	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/model"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/utils"

	"github.com/google/uuid"
)

// FileService manages per-project file metadata. Byte storage lives outside
// the core; this layer only tracks what exists and how large it is.
type FileService struct {
	fileRepo repository.FileRepository
}

func NewFileService(fileRepo repository.FileRepository) *FileService {
	return &FileService{fileRepo: fileRepo}
}

// RegisterFile records metadata for an uploaded file
func (s *FileService) RegisterFile(projectID, name, mimeType string, sizeBytes int64, actor string) (*model.FileRecord, error) {
	file := &model.FileRecord{
		UUID:        uuid.New().String(),
		ProjectUUID: projectID,
		Name:        name,
		MimeType:    mimeType,
		SizeBytes:   sizeBytes,
		CreatedBy:   actor,
	}
	if err := s.fileRepo.CreateFile(file); err != nil {
		return nil, err
	}
	return file, nil
}

// GetFileByID retrieves file metadata within a project
func (s *FileService) GetFileByID(id, projectID string) (*model.FileRecord, error) {
	file, err := s.fileRepo.GetFileByUUID(id, projectID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, constants.ErrFileNotFound
	}
	return file, nil
}

// ListFiles retrieves a page of a project's file metadata
func (s *FileService) ListFiles(projectID string, limit, offset int) ([]*model.FileRecord, error) {
	limit, offset = utils.ClampPage(limit, offset)
	files, err := s.fileRepo.ListFilesByProject(projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []*model.FileRecord{}
	}
	return files, nil
}

// DeleteFile removes file metadata
func (s *FileService) DeleteFile(id, projectID string) error {
	deleted, err := s.fileRepo.DeleteFile(id, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return constants.ErrFileNotFound
	}
	return nil
}
