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
	"testing"
	"time"

	"krapi-api/src/config"
	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/model"
	"krapi-api/src/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAdminRepo struct {
	admins map[string]*model.AdminUser
}

func (m *mockAdminRepo) CreateAdmin(admin *model.AdminUser) error {
	m.admins[admin.UUID] = admin
	return nil
}

func (m *mockAdminRepo) GetAdminByUUID(uuid string) (*model.AdminUser, error) {
	return m.admins[uuid], nil
}

func (m *mockAdminRepo) GetAdminByEmail(email string) (*model.AdminUser, error) {
	for _, admin := range m.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, nil
}

func (m *mockAdminRepo) CountAdmins() (int64, error) {
	return int64(len(m.admins)), nil
}

type mockKeyRepo struct {
	keys     map[string]*model.APIKey // by key value
	lastUsed map[string]time.Time     // by uuid
}

func (m *mockKeyRepo) CreateAPIKey(key *model.APIKey) error {
	m.keys[key.KeyValue] = key
	return nil
}

func (m *mockKeyRepo) GetAPIKeyByUUID(uuid, projectUUID string) (*model.APIKey, error) {
	for _, key := range m.keys {
		if key.UUID == uuid && key.ProjectUUID == projectUUID {
			return key, nil
		}
	}
	return nil, nil
}

func (m *mockKeyRepo) GetAPIKeyByValue(keyValue string) (*model.APIKey, error) {
	return m.keys[keyValue], nil
}

func (m *mockKeyRepo) ListAPIKeysByProject(projectUUID string) ([]*model.APIKey, error) {
	var out []*model.APIKey
	for _, key := range m.keys {
		if key.ProjectUUID == projectUUID {
			out = append(out, key)
		}
	}
	return out, nil
}

func (m *mockKeyRepo) UpdateLastUsed(uuid string, at time.Time) error {
	m.lastUsed[uuid] = at
	return nil
}

func (m *mockKeyRepo) DeleteAPIKey(uuid, projectUUID string) (bool, error) {
	for value, key := range m.keys {
		if key.UUID == uuid && key.ProjectUUID == projectUUID {
			delete(m.keys, value)
			return true, nil
		}
	}
	return false, nil
}

type mockUserRepo struct {
	users map[string]*model.ProjectUser // by uuid
}

func (m *mockUserRepo) CreateUser(user *model.ProjectUser) error {
	m.users[user.UUID] = user
	return nil
}

func (m *mockUserRepo) GetUserByUUID(uuid, projectUUID string) (*model.ProjectUser, error) {
	user := m.users[uuid]
	if user == nil || user.ProjectUUID != projectUUID {
		return nil, nil
	}
	return user, nil
}

func (m *mockUserRepo) GetUserByEmail(projectUUID, email string) (*model.ProjectUser, error) {
	for _, user := range m.users {
		if user.ProjectUUID == projectUUID && user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsersByProject(projectUUID string, limit, offset int) ([]*model.ProjectUser, error) {
	return nil, nil
}

func (m *mockUserRepo) CountUsersByProject(projectUUID string) (int64, error) {
	return 0, nil
}

func (m *mockUserRepo) UpdateUser(user *model.ProjectUser) error {
	m.users[user.UUID] = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(uuid string, at time.Time) error {
	if user := m.users[uuid]; user != nil {
		user.LastLogin = &at
	}
	return nil
}

func (m *mockUserRepo) DeleteUser(uuid, projectUUID string) (bool, error) {
	if _, ok := m.users[uuid]; !ok {
		return false, nil
	}
	delete(m.users, uuid)
	return true, nil
}

func newTestAuthService() (*AuthService, *mockAdminRepo, *mockKeyRepo, *mockUserRepo) {
	adminRepo := &mockAdminRepo{admins: map[string]*model.AdminUser{}}
	keyRepo := &mockKeyRepo{keys: map[string]*model.APIKey{}, lastUsed: map[string]time.Time{}}
	userRepo := &mockUserRepo{users: map[string]*model.ProjectUser{}}
	jwtCfg := config.JWT{
		SecretKey:     "test-secret",
		Issuer:        "krapi",
		AdminTokenTTL: 3600,
		UserTokenTTL:  3600,
	}
	return NewAuthService(adminRepo, keyRepo, userRepo, jwtCfg), adminRepo, keyRepo, userRepo
}

func seedAdmin(t *testing.T, repo *mockAdminRepo, password string, active bool) *model.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := &model.AdminUser{
		UUID:         "admin-1",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Name:         "Admin",
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	repo.admins[admin.UUID] = admin
	return admin
}

func seedKey(repo *mockKeyRepo, status string, expiresAt *time.Time) *model.APIKey {
	key := &model.APIKey{
		UUID:        "key-1",
		ProjectUUID: "proj-1",
		Name:        "default",
		KeyValue:    "krapi_testkey",
		Permissions: `["*"]`,
		Status:      status,
		ExpiresAt:   expiresAt,
	}
	repo.keys[key.KeyValue] = key
	return key
}

func TestLoginAdminAndAuthenticate(t *testing.T) {
	auth, adminRepo, _, _ := newTestAuthService()
	seedAdmin(t, adminRepo, "s3cret-pass", true)

	resp, err := auth.LoginAdmin("admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.Admin.Email)

	ctx, err := auth.AuthenticateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", ctx.AdminID)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	auth, adminRepo, _, _ := newTestAuthService()
	seedAdmin(t, adminRepo, "s3cret-pass", true)

	_, err := auth.LoginAdmin("admin@example.com", "wrong")
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)

	_, err = auth.LoginAdmin("nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}

func TestAdminRevocationBeatsValidToken(t *testing.T) {
	auth, adminRepo, _, _ := newTestAuthService()
	admin := seedAdmin(t, adminRepo, "s3cret-pass", true)

	resp, err := auth.LoginAdmin("admin@example.com", "s3cret-pass")
	require.NoError(t, err)

	// Deactivate after issuing: the signature is still valid but the
	// account check must reject it
	admin.IsActive = false
	_, err = auth.AuthenticateAdminToken(resp.Token)
	assert.ErrorIs(t, err, constants.ErrAdminDeactivated)

	// Deleted admin: same idea, different sentinel
	delete(adminRepo.admins, admin.UUID)
	_, err = auth.AuthenticateAdminToken(resp.Token)
	assert.ErrorIs(t, err, constants.ErrAdminNotFound)
}

func TestAuthenticateAPIKeyLifecycle(t *testing.T) {
	auth, _, keyRepo, _ := newTestAuthService()

	t.Run("unknown key", func(t *testing.T) {
		_, err := auth.AuthenticateAPIKey("krapi_nope")
		assert.ErrorIs(t, err, constants.ErrInvalidAPIKey)
	})

	t.Run("inactive key", func(t *testing.T) {
		seedKey(keyRepo, model.APIKeyStatusInactive, nil)
		_, err := auth.AuthenticateAPIKey("krapi_testkey")
		assert.ErrorIs(t, err, constants.ErrAPIKeyInactive)
	})

	t.Run("expired but active key", func(t *testing.T) {
		expired := time.Now().UTC().Add(-time.Hour)
		seedKey(keyRepo, model.APIKeyStatusActive, &expired)
		_, err := auth.AuthenticateAPIKey("krapi_testkey")
		assert.ErrorIs(t, err, constants.ErrAPIKeyExpired)
	})

	t.Run("valid key advances last_used", func(t *testing.T) {
		key := seedKey(keyRepo, model.APIKeyStatusActive, nil)
		before := time.Now().UTC()

		ctx, err := auth.AuthenticateAPIKey("krapi_testkey")
		require.NoError(t, err)
		assert.Equal(t, "proj-1", ctx.ProjectID)
		assert.Equal(t, []string{"*"}, ctx.Permissions)

		used, ok := keyRepo.lastUsed[key.UUID]
		require.True(t, ok, "last_used was not recorded")
		assert.False(t, used.Before(before))
	})
}

func TestUserLoginAndSession(t *testing.T) {
	auth, _, _, userRepo := newTestAuthService()
	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	userRepo.users["user-1"] = &model.ProjectUser{
		UUID:         "user-1",
		ProjectUUID:  "proj-1",
		Email:        "u@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	token, ctx, err := auth.LoginProjectUser("proj-1", "u@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "proj-1", ctx.ProjectID)
	require.NotNil(t, userRepo.users["user-1"].LastLogin)

	session, err := auth.AuthenticateUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	// Login is scoped per project
	_, _, err = auth.LoginProjectUser("proj-2", "u@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)

	// Deactivating the user invalidates existing sessions
	userRepo.users["user-1"].IsActive = false
	_, err = auth.AuthenticateUserToken(token)
	assert.ErrorIs(t, err, constants.ErrUserInactive)
}

func TestTokenKindsNotInterchangeable(t *testing.T) {
	auth, adminRepo, _, userRepo := newTestAuthService()
	seedAdmin(t, adminRepo, "s3cret-pass", true)
	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	userRepo.users["user-1"] = &model.ProjectUser{
		UUID:         "user-1",
		ProjectUUID:  "proj-1",
		Email:        "u@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	adminResp, err := auth.LoginAdmin("admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	userToken, _, err := auth.LoginProjectUser("proj-1", "u@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = auth.AuthenticateUserToken(adminResp.Token)
	assert.ErrorIs(t, err, constants.ErrInvalidToken)

	_, err = auth.AuthenticateAdminToken(userToken)
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}

func TestAuthenticateTokenGarbage(t *testing.T) {
	auth, _, _, _ := newTestAuthService()

	_, err := auth.AuthenticateAdminToken("not-a-jwt")
	assert.ErrorIs(t, err, constants.ErrInvalidToken)

	_, err = auth.AuthenticateUserToken("")
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}
