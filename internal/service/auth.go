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

package service

import (
	"encoding/json"
	"time"

	"krapi-api/src/config"
	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/repository"
	"krapi-api/src/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "kind" claim. An admin token never stands in
// for an API key or a user session, and vice versa.
const (
	tokenKindAdmin = "admin"
	tokenKindUser  = "user"
)

// AuthClaims is the JWT payload for both admin and project-user tokens
type AuthClaims struct {
	Kind      string `json:"kind"`
	Email     string `json:"email,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	jwt.RegisteredClaims
}

// TenantContext is the resolved identity of an API-key caller
type TenantContext struct {
	ProjectID   string
	KeyID       string
	KeyName     string
	Permissions []string
}

// AdminContext is the resolved identity of an administrator caller
type AdminContext struct {
	AdminID string
	Email   string
	Name    string
}

// UserContext is the resolved identity of a project end-user session
type UserContext struct {
	UserID    string
	ProjectID string
	Email     string
}

// AuthService resolves "who is calling, for which tenant" from the three
// credential shapes: admin bearer token, project API key, project-user
// session token.
type AuthService struct {
	adminRepo repository.AdminUserRepository
	keyRepo   repository.APIKeyRepository
	userRepo  repository.ProjectUserRepository
	jwtCfg    config.JWT
}

func NewAuthService(adminRepo repository.AdminUserRepository, keyRepo repository.APIKeyRepository,
	userRepo repository.ProjectUserRepository, jwtCfg config.JWT) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		keyRepo:   keyRepo,
		userRepo:  userRepo,
		jwtCfg:    jwtCfg,
	}
}

// LoginAdmin verifies administrator credentials and issues a bearer token
func (s *AuthService) LoginAdmin(email, password string) (*dto.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetAdminByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, constants.ErrInvalidCredentials
	}
	if err := utils.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, constants.ErrInvalidCredentials
	}

	token, err := s.issueToken(tokenKindAdmin, admin.UUID, admin.Email, "",
		time.Duration(s.jwtCfg.AdminTokenTTL)*time.Second)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{
		Token: token,
		Admin: &dto.Admin{
			ID:        admin.UUID,
			Email:     admin.Email,
			Name:      admin.Name,
			IsActive:  admin.IsActive,
			CreatedAt: admin.CreatedAt,
		},
	}, nil
}

// AuthenticateAdminToken verifies an admin bearer token. Signature and
// expiry checks are the JWT library's; on top of that the referenced admin
// must still exist and be active, so revocation takes effect immediately.
func (s *AuthService) AuthenticateAdminToken(raw string) (*AdminContext, error) {
	claims, err := s.parseToken(raw)
	if err != nil {
		return nil, constants.ErrInvalidToken
	}
	if claims.Kind != tokenKindAdmin {
		return nil, constants.ErrInvalidToken
	}

	admin, err := s.adminRepo.GetAdminByUUID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, constants.ErrAdminNotFound
	}
	if !admin.IsActive {
		return nil, constants.ErrAdminDeactivated
	}
	return &AdminContext{AdminID: admin.UUID, Email: admin.Email, Name: admin.Name}, nil
}

// AuthenticateAPIKey resolves a raw x-api-key value to its tenant context.
// A key is usable only while active and unexpired; every successful use
// advances last_used.
func (s *AuthService) AuthenticateAPIKey(raw string) (*TenantContext, error) {
	if raw == "" {
		return nil, constants.ErrInvalidAPIKey
	}
	key, err := s.keyRepo.GetAPIKeyByValue(raw)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, constants.ErrInvalidAPIKey
	}
	if key.Status != "active" {
		return nil, constants.ErrAPIKeyInactive
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now().UTC()) {
		return nil, constants.ErrAPIKeyExpired
	}

	if err := s.keyRepo.UpdateLastUsed(key.UUID, time.Now().UTC()); err != nil {
		return nil, err
	}

	permissions := []string{}
	if key.Permissions != "" {
		if err := json.Unmarshal([]byte(key.Permissions), &permissions); err != nil {
			utils.LogWarning("Failed to decode permissions for API key " + key.UUID)
		}
	}
	return &TenantContext{
		ProjectID:   key.ProjectUUID,
		KeyID:       key.UUID,
		KeyName:     key.Name,
		Permissions: permissions,
	}, nil
}

// LoginProjectUser verifies a project end-user credential and issues a
// session token scoped to that project
func (s *AuthService) LoginProjectUser(projectID, email, password string) (string, *UserContext, error) {
	user, err := s.userRepo.GetUserByEmail(projectID, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, constants.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, constants.ErrUserInactive
	}
	if err := utils.ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, constants.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.UUID, time.Now().UTC()); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(tokenKindUser, user.UUID, user.Email, projectID,
		time.Duration(s.jwtCfg.UserTokenTTL)*time.Second)
	if err != nil {
		return "", nil, err
	}
	return token, &UserContext{UserID: user.UUID, ProjectID: projectID, Email: user.Email}, nil
}

// AuthenticateUserToken verifies a project-user session token and re-loads
// the user, so deactivation takes effect immediately
func (s *AuthService) AuthenticateUserToken(raw string) (*UserContext, error) {
	claims, err := s.parseToken(raw)
	if err != nil {
		return nil, constants.ErrInvalidToken
	}
	if claims.Kind != tokenKindUser || claims.ProjectID == "" {
		return nil, constants.ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByUUID(claims.Subject, claims.ProjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, constants.ErrUserInactive
	}
	return &UserContext{UserID: user.UUID, ProjectID: claims.ProjectID, Email: user.Email}, nil
}

// issueToken signs an HS256 JWT with the configured secret
func (s *AuthService) issueToken(kind, subject, email, projectID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := AuthClaims{
		Kind:      kind,
		Email:     email,
		ProjectID: projectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

// parseToken validates signature, expiry and issuer
func (s *AuthService) parseToken(raw string) (*AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(s.jwtCfg.Issuer))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*AuthClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
