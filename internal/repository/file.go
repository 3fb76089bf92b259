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
	"database/sql"
	"errors"
	"time"

	"krapi-api/src/internal/database"
	"krapi-api/src/internal/model"
)

type FileRepo struct {
	db *database.DB
}

func NewFileRepo(db *database.DB) FileRepository {
	return &FileRepo{db: db}
}

const fileColumns = `uuid, project_uuid, name, mime_type, size_bytes, created_by, created_at`

func scanFile(row interface{ Scan(...interface{}) error }) (*model.FileRecord, error) {
	f := &model.FileRecord{}
	err := row.Scan(&f.UUID, &f.ProjectUUID, &f.Name, &f.MimeType, &f.SizeBytes, &f.CreatedBy, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFile inserts file metadata
func (r *FileRepo) CreateFile(file *model.FileRecord) error {
	file.CreatedAt = time.Now().UTC()

	query := r.db.Rebind(`
		INSERT INTO files (` + fileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, file.UUID, file.ProjectUUID, file.Name, file.MimeType,
		file.SizeBytes, file.CreatedBy, file.CreatedAt)
	return err
}

// GetFileByUUID retrieves file metadata scoped to one project
func (r *FileRepo) GetFileByUUID(uuid, projectUUID string) (*model.FileRecord, error) {
	query := r.db.Rebind(`
		SELECT ` + fileColumns + `
		FROM files
		WHERE uuid = ? AND project_uuid = ?
	`)
	file, err := scanFile(r.db.QueryRow(query, uuid, projectUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}

// ListFilesByProject retrieves file metadata with pagination, newest first
func (r *FileRepo) ListFilesByProject(projectUUID string, limit, offset int) ([]*model.FileRecord, error) {
	query := r.db.Rebind(`
		SELECT ` + fileColumns + `
		FROM files
		WHERE project_uuid = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, projectUUID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*model.FileRecord
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// FileStatsByProject returns file count and total stored bytes for a project
func (r *FileRepo) FileStatsByProject(projectUUID string) (int64, int64, error) {
	var count, bytes int64
	query := r.db.Rebind(`
		SELECT COUNT(*), COALESCE(SUM(size_bytes), 0)
		FROM files
		WHERE project_uuid = ?
	`)
	err := r.db.QueryRow(query, projectUUID).Scan(&count, &bytes)
	return count, bytes, err
}

// DeleteFile removes file metadata. Returns false when no such file exists.
func (r *FileRepo) DeleteFile(uuid, projectUUID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM files WHERE uuid = ? AND project_uuid = ?`)
	res, err := r.db.Exec(query, uuid, projectUUID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
