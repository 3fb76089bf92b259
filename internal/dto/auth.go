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

package dto

import (
	"time"
)

// Admin represents an administrator account as exposed by the API
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminLoginRequest is the payload for POST /auth/login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the signed admin bearer token
type AdminLoginResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// UserLoginRequest is the payload for POST /auth/user/login. ProjectID is
// mandatory: project end-user identities only exist within one project.
type UserLoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
}

// UserLoginResponse carries the project-user session token
type UserLoginResponse struct {
	Token string       `json:"token"`
	User  *ProjectUser `json:"user"`
}

// VerifyKeyResponse is returned by the POST /auth/verify handshake
type VerifyKeyResponse struct {
	ProjectID   string   `json:"project_id"`
	KeyName     string   `json:"key_name"`
	Permissions []string `json:"permissions"`
}
