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

type APIKeyRepo struct {
	db *database.DB
}

func NewAPIKeyRepo(db *database.DB) APIKeyRepository {
	return &APIKeyRepo{db: db}
}

const apiKeyColumns = `uuid, project_uuid, name, key_value, permissions, status, expires_at, last_used, created_at, updated_at`

func scanAPIKey(row interface{ Scan(...interface{}) error }) (*model.APIKey, error) {
	k := &model.APIKey{}
	err := row.Scan(&k.UUID, &k.ProjectUUID, &k.Name, &k.KeyValue, &k.Permissions,
		&k.Status, &k.ExpiresAt, &k.LastUsed, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// CreateAPIKey inserts a new API key
func (r *APIKeyRepo) CreateAPIKey(key *model.APIKey) error {
	key.CreatedAt = time.Now().UTC()
	key.UpdatedAt = key.CreatedAt

	query := r.db.Rebind(`
		INSERT INTO api_keys (` + apiKeyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, key.UUID, key.ProjectUUID, key.Name, key.KeyValue,
		key.Permissions, key.Status, key.ExpiresAt, key.LastUsed, key.CreatedAt, key.UpdatedAt)
	return err
}

// GetAPIKeyByUUID retrieves a key scoped to one project
func (r *APIKeyRepo) GetAPIKeyByUUID(uuid, projectUUID string) (*model.APIKey, error) {
	query := r.db.Rebind(`
		SELECT ` + apiKeyColumns + `
		FROM api_keys
		WHERE uuid = ? AND project_uuid = ?
	`)
	key, err := scanAPIKey(r.db.QueryRow(query, uuid, projectUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return key, nil
}

// GetAPIKeyByValue retrieves a key by its opaque secret. Unscoped by design:
// the key value itself resolves the tenant.
func (r *APIKeyRepo) GetAPIKeyByValue(keyValue string) (*model.APIKey, error) {
	query := r.db.Rebind(`
		SELECT ` + apiKeyColumns + `
		FROM api_keys
		WHERE key_value = ?
	`)
	key, err := scanAPIKey(r.db.QueryRow(query, keyValue))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return key, nil
}

// ListAPIKeysByProject retrieves all keys for a project, newest first
func (r *APIKeyRepo) ListAPIKeysByProject(projectUUID string) ([]*model.APIKey, error) {
	query := r.db.Rebind(`
		SELECT ` + apiKeyColumns + `
		FROM api_keys
		WHERE project_uuid = ?
		ORDER BY created_at DESC
	`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []*model.APIKey
	for rows.Next() {
		key, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// UpdateLastUsed advances a key's last_used timestamp
func (r *APIKeyRepo) UpdateLastUsed(uuid string, at time.Time) error {
	query := r.db.Rebind(`UPDATE api_keys SET last_used = ? WHERE uuid = ?`)
	_, err := r.db.Exec(query, at, uuid)
	return err
}

// DeleteAPIKey removes a key. Returns false when no such key exists.
func (r *APIKeyRepo) DeleteAPIKey(uuid, projectUUID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM api_keys WHERE uuid = ? AND project_uuid = ?`)
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
