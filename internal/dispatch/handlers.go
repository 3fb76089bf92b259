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

package dispatch

import (
	"encoding/json"
	"fmt"
	"strconv"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/service"
)

// handlers holds the service dependencies behind the dispatch tables
type handlers struct {
	projects    *service.ProjectService
	collections *service.CollectionService
	documents   *service.DocumentService
	users       *service.ProjectUserService
	keys        *service.APIKeyService
	files       *service.FileService
	stats       *service.StatsService
	auth        *service.AuthService
}

// requireScope resolves the project a call operates on. An API-key caller is
// pinned to its own project; an admin must name one explicitly.
func requireScope(ctx *Context, params map[string]interface{}) (string, error) {
	if ctx.Tenant != nil {
		return ctx.Tenant.ProjectID, nil
	}
	if ctx.IsAdmin {
		return requireString(params, "project_id")
	}
	return "", constants.ErrInvalidAPIKey
}

func requireString(params map[string]interface{}, name string) (string, error) {
	v, ok := params[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", constants.ErrMissingParameter, name)
	}
	return v, nil
}

func optString(params map[string]interface{}, name string) string {
	v, _ := params[name].(string)
	return v
}

// optInt reads a numeric parameter. JSON numbers arrive as float64, ints
// appear when params were built in-process, and strings come from
// query-mirrored GET dispatch.
func optInt(params map[string]interface{}, name string) int {
	switch v := params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// decodeParams re-marshals the params map into a typed request payload
func decodeParams(params map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: params", constants.ErrMissingParameter)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: params", constants.ErrMissingParameter)
	}
	return nil
}

// database.collections

func (h *handlers) listCollections(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	return h.collections.ListCollections(projectID, optInt(params, "limit"), optInt(params, "offset"))
}

func (h *handlers) getCollection(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "collection_id")
	if err != nil {
		return nil, err
	}
	return h.collections.GetCollectionByID(id, projectID)
}

func (h *handlers) createCollection(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	if _, err := requireString(params, "name"); err != nil {
		return nil, err
	}
	var req dto.CreateCollectionRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.collections.CreateCollection(projectID, &req)
}

func (h *handlers) updateCollection(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "collection_id")
	if err != nil {
		return nil, err
	}
	var req dto.UpdateCollectionRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.collections.UpdateCollection(id, projectID, &req)
}

func (h *handlers) deleteCollection(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "collection_id")
	if err != nil {
		return nil, err
	}
	return nil, h.collections.DeleteCollection(id, projectID)
}

// database.documents

func (h *handlers) listDocuments(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	collectionID, err := requireString(params, "collection_id")
	if err != nil {
		return nil, err
	}
	return h.documents.ListDocuments(collectionID, projectID, optInt(params, "limit"), optInt(params, "offset"))
}

func (h *handlers) getDocument(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "document_id")
	if err != nil {
		return nil, err
	}
	return h.documents.GetDocumentByID(id, projectID)
}

func (h *handlers) createDocument(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	collectionID, err := requireString(params, "collection_id")
	if err != nil {
		return nil, err
	}
	data, ok := params["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: data", constants.ErrMissingParameter)
	}
	return h.documents.CreateDocument(collectionID, projectID, &dto.CreateDocumentRequest{Data: data}, ctx.Actor())
}

func (h *handlers) updateDocument(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "document_id")
	if err != nil {
		return nil, err
	}
	data, ok := params["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: data", constants.ErrMissingParameter)
	}
	return h.documents.UpdateDocument(id, projectID, &dto.UpdateDocumentRequest{Data: data}, ctx.Actor())
}

func (h *handlers) deleteDocument(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "document_id")
	if err != nil {
		return nil, err
	}
	return nil, h.documents.DeleteDocument(id, projectID)
}

// database.users

func (h *handlers) listUsers(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	return h.users.ListUsers(projectID, optInt(params, "limit"), optInt(params, "offset"))
}

func (h *handlers) getUser(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	return h.users.GetUserByID(id, projectID)
}

func (h *handlers) createUser(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	if _, err := requireString(params, "email"); err != nil {
		return nil, err
	}
	if _, err := requireString(params, "password"); err != nil {
		return nil, err
	}
	var req dto.CreateUserRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.users.CreateUser(projectID, &req)
}

func (h *handlers) updateUser(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	var req dto.UpdateUserRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.users.UpdateUser(id, projectID, &req)
}

func (h *handlers) deleteUser(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	return nil, h.users.DeleteUser(id, projectID)
}

// auth

func (h *handlers) loginUser(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	email, err := requireString(params, "email")
	if err != nil {
		return nil, err
	}
	password, err := requireString(params, "password")
	if err != nil {
		return nil, err
	}
	token, user, err := h.auth.LoginProjectUser(projectID, email, password)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"token": token, "user": user}, nil
}

func (h *handlers) getSession(ctx *Context, params map[string]interface{}) (interface{}, error) {
	token, err := requireString(params, "token")
	if err != nil {
		return nil, err
	}
	session, err := h.auth.AuthenticateUserToken(token)
	if err != nil {
		return nil, err
	}
	if ctx.Tenant != nil && ctx.Tenant.ProjectID != session.ProjectID {
		return nil, constants.ErrInvalidToken
	}
	return session, nil
}

func (h *handlers) verifyKey(ctx *Context, _ map[string]interface{}) (interface{}, error) {
	if ctx.Tenant == nil {
		return nil, constants.ErrInvalidAPIKey
	}
	return &dto.VerifyKeyResponse{
		ProjectID:   ctx.Tenant.ProjectID,
		KeyName:     ctx.Tenant.KeyName,
		Permissions: ctx.Tenant.Permissions,
	}, nil
}

// storage.files

func (h *handlers) listFiles(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	return h.files.ListFiles(projectID, optInt(params, "limit"), optInt(params, "offset"))
}

func (h *handlers) getFile(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "file_id")
	if err != nil {
		return nil, err
	}
	return h.files.GetFileByID(id, projectID)
}

func (h *handlers) registerFile(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	name, err := requireString(params, "name")
	if err != nil {
		return nil, err
	}
	sizeBytes := int64(optInt(params, "size_bytes"))
	return h.files.RegisterFile(projectID, name, optString(params, "mime_type"), sizeBytes, ctx.Actor())
}

func (h *handlers) deleteFile(ctx *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireScope(ctx, params)
	if err != nil {
		return nil, err
	}
	id, err := requireString(params, "file_id")
	if err != nil {
		return nil, err
	}
	return nil, h.files.DeleteFile(id, projectID)
}

// admin.projects

func (h *handlers) listProjects(_ *Context, params map[string]interface{}) (interface{}, error) {
	return h.projects.ListProjects(optInt(params, "limit"), optInt(params, "offset"))
}

func (h *handlers) getProject(_ *Context, params map[string]interface{}) (interface{}, error) {
	id, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	return h.projects.GetProjectByID(id)
}

func (h *handlers) createProject(ctx *Context, params map[string]interface{}) (interface{}, error) {
	if _, err := requireString(params, "name"); err != nil {
		return nil, err
	}
	var req dto.CreateProjectRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.projects.CreateProject(&req, ctx.Actor())
}

func (h *handlers) updateProject(_ *Context, params map[string]interface{}) (interface{}, error) {
	id, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	var req dto.UpdateProjectRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.projects.UpdateProject(id, &req)
}

func (h *handlers) deleteProject(_ *Context, params map[string]interface{}) (interface{}, error) {
	id, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	return nil, h.projects.DeleteProject(id)
}

// admin.keys

func (h *handlers) listKeys(_ *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	return h.keys.ListAPIKeys(projectID)
}

func (h *handlers) createKey(_ *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	if _, err := requireString(params, "name"); err != nil {
		return nil, err
	}
	var req dto.CreateAPIKeyRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return h.keys.CreateAPIKey(projectID, &req)
}

func (h *handlers) deleteKey(_ *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	keyID, err := requireString(params, "key_id")
	if err != nil {
		return nil, err
	}
	return nil, h.keys.DeleteAPIKey(keyID, projectID)
}

// admin.stats

func (h *handlers) getStats(_ *Context, params map[string]interface{}) (interface{}, error) {
	projectID, err := requireString(params, "project_id")
	if err != nil {
		return nil, err
	}
	return h.stats.ProjectStats(projectID)
}
