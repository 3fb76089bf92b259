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

type CollectionRepo struct {
	db *database.DB
}

func NewCollectionRepo(db *database.DB) CollectionRepository {
	return &CollectionRepo{db: db}
}

const collectionColumns = `uuid, project_uuid, name, description, schema, indexes, permissions, document_count, created_at, updated_at`

func scanCollection(row interface{ Scan(...interface{}) error }) (*model.Collection, error) {
	c := &model.Collection{}
	err := row.Scan(&c.UUID, &c.ProjectUUID, &c.Name, &c.Description, &c.Schema,
		&c.Indexes, &c.Permissions, &c.DocumentCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCollection inserts a new collection
func (r *CollectionRepo) CreateCollection(collection *model.Collection) error {
	collection.CreatedAt = time.Now().UTC()
	collection.UpdatedAt = collection.CreatedAt

	query := r.db.Rebind(`
		INSERT INTO collections (` + collectionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, collection.UUID, collection.ProjectUUID, collection.Name,
		collection.Description, collection.Schema, collection.Indexes, collection.Permissions,
		collection.DocumentCount, collection.CreatedAt, collection.UpdatedAt)
	return err
}

// GetCollectionByUUID retrieves a collection scoped to one project. A valid
// id belonging to another project reads as absent.
func (r *CollectionRepo) GetCollectionByUUID(uuid, projectUUID string) (*model.Collection, error) {
	query := r.db.Rebind(`
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE uuid = ? AND project_uuid = ?
	`)
	collection, err := scanCollection(r.db.QueryRow(query, uuid, projectUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return collection, nil
}

// GetCollectionByName retrieves a collection by its per-project unique name
func (r *CollectionRepo) GetCollectionByName(projectUUID, name string) (*model.Collection, error) {
	query := r.db.Rebind(`
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE project_uuid = ? AND name = ?
	`)
	collection, err := scanCollection(r.db.QueryRow(query, projectUUID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return collection, nil
}

// ListCollectionsByProject retrieves collections with pagination, newest first
func (r *CollectionRepo) ListCollectionsByProject(projectUUID string, limit, offset int) ([]*model.Collection, error) {
	query := r.db.Rebind(`
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE project_uuid = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, projectUUID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*model.Collection
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}

	return collections, rows.Err()
}

// CountCollectionsByProject returns the number of collections in a project
func (r *CollectionRepo) CountCollectionsByProject(projectUUID string) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM collections WHERE project_uuid = ?`)
	err := r.db.QueryRow(query, projectUUID).Scan(&count)
	return count, err
}

// UpdateCollection modifies an existing collection
func (r *CollectionRepo) UpdateCollection(collection *model.Collection) error {
	collection.UpdatedAt = time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE collections
		SET name = ?, description = ?, schema = ?, indexes = ?, permissions = ?, updated_at = ?
		WHERE uuid = ? AND project_uuid = ?
	`)
	_, err := r.db.Exec(query, collection.Name, collection.Description, collection.Schema,
		collection.Indexes, collection.Permissions, collection.UpdatedAt,
		collection.UUID, collection.ProjectUUID)
	return err
}

// DeleteCollection removes a collection; its documents cascade with it
func (r *CollectionRepo) DeleteCollection(uuid, projectUUID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM collections WHERE uuid = ? AND project_uuid = ?`)
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
