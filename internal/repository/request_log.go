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

	"krapi-api/src/internal/database"
	"krapi-api/src/internal/model"
)

type RequestLogRepo struct {
	db *database.DB
}

func NewRequestLogRepo(db *database.DB) RequestLogRepository {
	return &RequestLogRepo{db: db}
}

// InsertLog appends one request record. Rows are never updated afterwards.
func (r *RequestLogRepo) InsertLog(entry *model.RequestLog) error {
	entry.CreatedAt = time.Now().UTC()

	query := r.db.Rebind(`
		INSERT INTO api_request_logs (uuid, project_uuid, api_key_uuid, method, path, status_code, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, entry.UUID, entry.ProjectUUID, entry.APIKeyUUID,
		entry.Method, entry.Path, entry.StatusCode, entry.LatencyMS, entry.CreatedAt)
	return err
}

// CountByProject returns the all-time request count for a project
func (r *RequestLogRepo) CountByProject(projectUUID string) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM api_request_logs WHERE project_uuid = ?`)
	err := r.db.QueryRow(query, projectUUID).Scan(&count)
	return count, err
}

// CountByProjectSince returns the request count recorded at or after `since`
func (r *RequestLogRepo) CountByProjectSince(projectUUID string, since time.Time) (int64, error) {
	var count int64
	query := r.db.Rebind(`
		SELECT COUNT(*)
		FROM api_request_logs
		WHERE project_uuid = ? AND created_at >= ?
	`)
	err := r.db.QueryRow(query, projectUUID, since).Scan(&count)
	return count, err
}
