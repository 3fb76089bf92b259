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

type ProjectUserRepo struct {
	db *database.DB
}

func NewProjectUserRepo(db *database.DB) ProjectUserRepository {
	return &ProjectUserRepo{db: db}
}

const userColumns = `uuid, project_uuid, email, password_hash, name, is_verified, is_active, oauth_providers, preferences, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.ProjectUser, error) {
	u := &model.ProjectUser{}
	err := row.Scan(&u.UUID, &u.ProjectUUID, &u.Email, &u.PasswordHash, &u.Name,
		&u.IsVerified, &u.IsActive, &u.OAuthProviders, &u.Preferences,
		&u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a new project end-user
func (r *ProjectUserRepo) CreateUser(user *model.ProjectUser) error {
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	query := r.db.Rebind(`
		INSERT INTO project_users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, user.UUID, user.ProjectUUID, user.Email, user.PasswordHash,
		user.Name, user.IsVerified, user.IsActive, user.OAuthProviders, user.Preferences,
		user.LastLogin, user.CreatedAt, user.UpdatedAt)
	return err
}

// GetUserByUUID retrieves a user scoped to one project
func (r *ProjectUserRepo) GetUserByUUID(uuid, projectUUID string) (*model.ProjectUser, error) {
	query := r.db.Rebind(`
		SELECT ` + userColumns + `
		FROM project_users
		WHERE uuid = ? AND project_uuid = ?
	`)
	user, err := scanUser(r.db.QueryRow(query, uuid, projectUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by per-project unique email
func (r *ProjectUserRepo) GetUserByEmail(projectUUID, email string) (*model.ProjectUser, error) {
	query := r.db.Rebind(`
		SELECT ` + userColumns + `
		FROM project_users
		WHERE project_uuid = ? AND email = ?
	`)
	user, err := scanUser(r.db.QueryRow(query, projectUUID, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ListUsersByProject retrieves users with pagination, newest first
func (r *ProjectUserRepo) ListUsersByProject(projectUUID string, limit, offset int) ([]*model.ProjectUser, error) {
	query := r.db.Rebind(`
		SELECT ` + userColumns + `
		FROM project_users
		WHERE project_uuid = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, projectUUID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.ProjectUser
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// CountUsersByProject returns the number of end-users in a project
func (r *ProjectUserRepo) CountUsersByProject(projectUUID string) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM project_users WHERE project_uuid = ?`)
	err := r.db.QueryRow(query, projectUUID).Scan(&count)
	return count, err
}

// UpdateUser modifies an existing user
func (r *ProjectUserRepo) UpdateUser(user *model.ProjectUser) error {
	user.UpdatedAt = time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE project_users
		SET name = ?, is_verified = ?, is_active = ?, oauth_providers = ?, preferences = ?, updated_at = ?
		WHERE uuid = ? AND project_uuid = ?
	`)
	_, err := r.db.Exec(query, user.Name, user.IsVerified, user.IsActive,
		user.OAuthProviders, user.Preferences, user.UpdatedAt, user.UUID, user.ProjectUUID)
	return err
}

// UpdateLastLogin advances a user's last_login timestamp
func (r *ProjectUserRepo) UpdateLastLogin(uuid string, at time.Time) error {
	query := r.db.Rebind(`UPDATE project_users SET last_login = ? WHERE uuid = ?`)
	_, err := r.db.Exec(query, at, uuid)
	return err
}

// DeleteUser removes a user. Returns false when no such user exists.
func (r *ProjectUserRepo) DeleteUser(uuid, projectUUID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM project_users WHERE uuid = ? AND project_uuid = ?`)
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
