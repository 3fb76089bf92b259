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

type AdminUserRepo struct {
	db *database.DB
}

func NewAdminUserRepo(db *database.DB) AdminUserRepository {
	return &AdminUserRepo{db: db}
}

const adminColumns = `uuid, email, password_hash, name, is_active, created_at, updated_at`

func scanAdmin(row interface{ Scan(...interface{}) error }) (*model.AdminUser, error) {
	a := &model.AdminUser{}
	err := row.Scan(&a.UUID, &a.Email, &a.PasswordHash, &a.Name, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAdmin inserts a new administrator account
func (r *AdminUserRepo) CreateAdmin(admin *model.AdminUser) error {
	admin.CreatedAt = time.Now().UTC()
	admin.UpdatedAt = admin.CreatedAt

	query := r.db.Rebind(`
		INSERT INTO admin_users (` + adminColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, admin.UUID, admin.Email, admin.PasswordHash, admin.Name,
		admin.IsActive, admin.CreatedAt, admin.UpdatedAt)
	return err
}

// GetAdminByUUID retrieves an administrator by id
func (r *AdminUserRepo) GetAdminByUUID(uuid string) (*model.AdminUser, error) {
	query := r.db.Rebind(`SELECT ` + adminColumns + ` FROM admin_users WHERE uuid = ?`)
	admin, err := scanAdmin(r.db.QueryRow(query, uuid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

// GetAdminByEmail retrieves an administrator by unique email
func (r *AdminUserRepo) GetAdminByEmail(email string) (*model.AdminUser, error) {
	query := r.db.Rebind(`SELECT ` + adminColumns + ` FROM admin_users WHERE email = ?`)
	admin, err := scanAdmin(r.db.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

// CountAdmins returns the number of administrator accounts
func (r *AdminUserRepo) CountAdmins() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&count)
	return count, err
}
