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

type DocumentRepo struct {
	db *database.DB
}

func NewDocumentRepo(db *database.DB) DocumentRepository {
	return &DocumentRepo{db: db}
}

const documentColumns = `uuid, collection_uuid, project_uuid, data, created_by, updated_by, created_at, updated_at`

func scanDocument(row interface{ Scan(...interface{}) error }) (*model.Document, error) {
	d := &model.Document{}
	err := row.Scan(&d.UUID, &d.CollectionUUID, &d.ProjectUUID, &d.Data,
		&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDocument inserts a document and increments the owning collection's
// document_count in one transaction. The owning project is resolved from the
// collection row so a caller-supplied mismatched project id can never
// produce a cross-tenant document. Returns false when the collection does
// not exist in doc.ProjectUUID's scope.
func (r *DocumentRepo) CreateDocument(doc *model.Document) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var ownerProject string
	query := r.db.Rebind(`SELECT project_uuid FROM collections WHERE uuid = ?`)
	err = tx.QueryRow(query, doc.CollectionUUID).Scan(&ownerProject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if doc.ProjectUUID != "" && doc.ProjectUUID != ownerProject {
		// Collection exists but under a different tenant: absent to this caller
		return false, nil
	}
	doc.ProjectUUID = ownerProject

	doc.CreatedAt = time.Now().UTC()
	doc.UpdatedAt = doc.CreatedAt

	query = r.db.Rebind(`
		INSERT INTO documents (` + documentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = tx.Exec(query, doc.UUID, doc.CollectionUUID, doc.ProjectUUID, doc.Data,
		doc.CreatedBy, doc.UpdatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return false, err
	}

	query = r.db.Rebind(`
		UPDATE collections
		SET document_count = document_count + 1, updated_at = ?
		WHERE uuid = ?
	`)
	if _, err := tx.Exec(query, doc.UpdatedAt, doc.CollectionUUID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// GetDocumentByUUID retrieves a document scoped to one project
func (r *DocumentRepo) GetDocumentByUUID(uuid, projectUUID string) (*model.Document, error) {
	query := r.db.Rebind(`
		SELECT ` + documentColumns + `
		FROM documents
		WHERE uuid = ? AND project_uuid = ?
	`)
	doc, err := scanDocument(r.db.QueryRow(query, uuid, projectUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// ListDocumentsByCollection retrieves documents ordered by creation time
// descending. Callers clamp limit/offset before reaching here.
func (r *DocumentRepo) ListDocumentsByCollection(collectionUUID, projectUUID string, limit, offset int) ([]*model.Document, error) {
	query := r.db.Rebind(`
		SELECT ` + documentColumns + `
		FROM documents
		WHERE collection_uuid = ? AND project_uuid = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, collectionUUID, projectUUID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// CountDocumentsByCollection returns the live document count for a collection
func (r *DocumentRepo) CountDocumentsByCollection(collectionUUID string) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM documents WHERE collection_uuid = ?`)
	err := r.db.QueryRow(query, collectionUUID).Scan(&count)
	return count, err
}

// CountDocumentsByProject returns the number of documents across a project
func (r *DocumentRepo) CountDocumentsByProject(projectUUID string) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM documents WHERE project_uuid = ?`)
	err := r.db.QueryRow(query, projectUUID).Scan(&count)
	return count, err
}

// UpdateDocument replaces a document's data. Returns false when the document
// does not exist in the given project.
func (r *DocumentRepo) UpdateDocument(doc *model.Document) (bool, error) {
	doc.UpdatedAt = time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE documents
		SET data = ?, updated_by = ?, updated_at = ?
		WHERE uuid = ? AND project_uuid = ?
	`)
	res, err := r.db.Exec(query, doc.Data, doc.UpdatedBy, doc.UpdatedAt, doc.UUID, doc.ProjectUUID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteDocument removes a document and decrements the owning collection's
// document_count in one transaction. Returns false (not an error) when the
// document does not exist.
func (r *DocumentRepo) DeleteDocument(uuid, projectUUID string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var collectionUUID string
	query := r.db.Rebind(`SELECT collection_uuid FROM documents WHERE uuid = ? AND project_uuid = ?`)
	err = tx.QueryRow(query, uuid, projectUUID).Scan(&collectionUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	query = r.db.Rebind(`DELETE FROM documents WHERE uuid = ?`)
	if _, err := tx.Exec(query, uuid); err != nil {
		return false, err
	}

	query = r.db.Rebind(`
		UPDATE collections
		SET document_count = document_count - 1, updated_at = ?
		WHERE uuid = ? AND document_count > 0
	`)
	if _, err := tx.Exec(query, time.Now().UTC(), collectionUUID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
