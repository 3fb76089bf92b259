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

package repository

import (
	"time"

	"krapi-api/src/internal/model"
)

// ProjectRepository defines data access methods for projects
type ProjectRepository interface {
	CreateProject(project *model.Project) error
	GetProjectByUUID(uuid string) (*model.Project, error)
	ListProjects(limit, offset int) ([]*model.Project, error)
	CountProjects() (int, error)
	UpdateProject(project *model.Project) error
	// DeleteProject removes the project; child rows go with it via
	// ON DELETE CASCADE. Returns false when no such project exists.
	DeleteProject(uuid string) (bool, error)
}

// CollectionRepository defines data access methods for collections
type CollectionRepository interface {
	CreateCollection(collection *model.Collection) error
	GetCollectionByUUID(uuid, projectUUID string) (*model.Collection, error)
	GetCollectionByName(projectUUID, name string) (*model.Collection, error)
	ListCollectionsByProject(projectUUID string, limit, offset int) ([]*model.Collection, error)
	CountCollectionsByProject(projectUUID string) (int64, error)
	UpdateCollection(collection *model.Collection) error
	DeleteCollection(uuid, projectUUID string) (bool, error)
}

// DocumentRepository defines data access methods for documents. Create and
// delete maintain the owning collection's document_count in the same
// transaction as the row change.
type DocumentRepository interface {
	// CreateDocument resolves the owning project from the collection inside
	// the transaction and increments document_count. Returns false when the
	// collection does not exist in the given project.
	CreateDocument(doc *model.Document) (bool, error)
	GetDocumentByUUID(uuid, projectUUID string) (*model.Document, error)
	ListDocumentsByCollection(collectionUUID, projectUUID string, limit, offset int) ([]*model.Document, error)
	CountDocumentsByCollection(collectionUUID string) (int64, error)
	CountDocumentsByProject(projectUUID string) (int64, error)
	UpdateDocument(doc *model.Document) (bool, error)
	// DeleteDocument decrements the owning collection's document_count.
	// Returns false (not an error) when the document does not exist.
	DeleteDocument(uuid, projectUUID string) (bool, error)
}

// ProjectUserRepository defines data access methods for project end-users
type ProjectUserRepository interface {
	CreateUser(user *model.ProjectUser) error
	GetUserByUUID(uuid, projectUUID string) (*model.ProjectUser, error)
	GetUserByEmail(projectUUID, email string) (*model.ProjectUser, error)
	ListUsersByProject(projectUUID string, limit, offset int) ([]*model.ProjectUser, error)
	CountUsersByProject(projectUUID string) (int64, error)
	UpdateUser(user *model.ProjectUser) error
	UpdateLastLogin(uuid string, at time.Time) error
	DeleteUser(uuid, projectUUID string) (bool, error)
}

// APIKeyRepository defines data access methods for project API keys
type APIKeyRepository interface {
	CreateAPIKey(key *model.APIKey) error
	GetAPIKeyByUUID(uuid, projectUUID string) (*model.APIKey, error)
	GetAPIKeyByValue(keyValue string) (*model.APIKey, error)
	ListAPIKeysByProject(projectUUID string) ([]*model.APIKey, error)
	UpdateLastUsed(uuid string, at time.Time) error
	DeleteAPIKey(uuid, projectUUID string) (bool, error)
}

// AdminUserRepository defines data access methods for administrator accounts
type AdminUserRepository interface {
	CreateAdmin(admin *model.AdminUser) error
	GetAdminByUUID(uuid string) (*model.AdminUser, error)
	GetAdminByEmail(email string) (*model.AdminUser, error)
	CountAdmins() (int64, error)
}

// FileRepository defines data access methods for file metadata
type FileRepository interface {
	CreateFile(file *model.FileRecord) error
	GetFileByUUID(uuid, projectUUID string) (*model.FileRecord, error)
	ListFilesByProject(projectUUID string, limit, offset int) ([]*model.FileRecord, error)
	// FileStatsByProject returns file count and total stored bytes.
	FileStatsByProject(projectUUID string) (int64, int64, error)
	DeleteFile(uuid, projectUUID string) (bool, error)
}

// RequestLogRepository defines data access methods for the append-only
// request log
type RequestLogRepository interface {
	InsertLog(entry *model.RequestLog) error
	CountByProject(projectUUID string) (int64, error)
	CountByProjectSince(projectUUID string, since time.Time) (int64, error)
}
