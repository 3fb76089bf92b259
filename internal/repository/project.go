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

type ProjectRepo struct {
	db *database.DB
}

func NewProjectRepo(db *database.DB) ProjectRepository {
	return &ProjectRepo{db: db}
}

// CreateProject inserts a new project
func (r *ProjectRepo) CreateProject(project *model.Project) error {
	project.CreatedAt = time.Now().UTC()
	project.UpdatedAt = project.CreatedAt

	query := r.db.Rebind(`
		INSERT INTO projects (uuid, name, description, domain, settings, status, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, project.UUID, project.Name, project.Description, project.Domain,
		project.Settings, project.Status, project.CreatedBy, project.CreatedAt, project.UpdatedAt)
	return err
}

// GetProjectByUUID retrieves a project by ID
func (r *ProjectRepo) GetProjectByUUID(uuid string) (*model.Project, error) {
	project := &model.Project{}
	query := r.db.Rebind(`
		SELECT uuid, name, description, domain, settings, status, created_by, created_at, updated_at
		FROM projects
		WHERE uuid = ?
	`)
	err := r.db.QueryRow(query, uuid).Scan(
		&project.UUID, &project.Name, &project.Description, &project.Domain, &project.Settings,
		&project.Status, &project.CreatedBy, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// ListProjects retrieves projects with pagination, newest first
func (r *ProjectRepo) ListProjects(limit, offset int) ([]*model.Project, error) {
	query := r.db.Rebind(`
		SELECT uuid, name, description, domain, settings, status, created_by, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		project := &model.Project{}
		err := rows.Scan(&project.UUID, &project.Name, &project.Description, &project.Domain,
			&project.Settings, &project.Status, &project.CreatedBy, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// CountProjects returns the total number of projects
func (r *ProjectRepo) CountProjects() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

// UpdateProject modifies an existing project
func (r *ProjectRepo) UpdateProject(project *model.Project) error {
	project.UpdatedAt = time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE projects
		SET name = ?, description = ?, domain = ?, settings = ?, status = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, project.Name, project.Description, project.Domain,
		project.Settings, project.Status, project.UpdatedAt, project.UUID)
	return err
}

// DeleteProject removes a project; foreign keys cascade to all child rows
func (r *ProjectRepo) DeleteProject(uuid string) (bool, error) {
	res, err := r.db.Exec(r.db.Rebind(`DELETE FROM projects WHERE uuid = ?`), uuid)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
