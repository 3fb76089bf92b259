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
	"fmt"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/service"
)

// Context is the authenticated identity a dispatch call runs under. Exactly
// one of Admin or Tenant is set for a valid caller; the zero value is an
// unauthenticated request.
type Context struct {
	IsAdmin bool
	Admin   *service.AdminContext
	Tenant  *service.TenantContext
}

// Actor returns a stable attribution string for created_by/updated_by fields
func (c *Context) Actor() string {
	switch {
	case c.Admin != nil:
		return "admin:" + c.Admin.AdminID
	case c.Tenant != nil:
		return "key:" + c.Tenant.KeyID
	default:
		return ""
	}
}

// HandlerFunc executes one resolved action. Handlers are pure functions of
// (context, params); all state lives behind the services.
type HandlerFunc func(ctx *Context, params map[string]interface{}) (interface{}, error)

type actionTable map[string]HandlerFunc
type resourceTable map[string]actionTable

// Dispatcher routes a {operation, resource, action} envelope through a
// two-level lookup table built once at construction. Unknown segments fail
// naming exactly the segment that did not resolve.
type Dispatcher struct {
	operations map[string]resourceTable
	// adminOnly operations re-check the resolved identity even though the
	// transport layer already authenticated a credential
	adminOnly map[string]bool
}

// NewDispatcher builds the handler tables over the given services
func NewDispatcher(projects *service.ProjectService, collections *service.CollectionService,
	documents *service.DocumentService, users *service.ProjectUserService,
	keys *service.APIKeyService, files *service.FileService,
	stats *service.StatsService, auth *service.AuthService) *Dispatcher {

	h := &handlers{
		projects:    projects,
		collections: collections,
		documents:   documents,
		users:       users,
		keys:        keys,
		files:       files,
		stats:       stats,
		auth:        auth,
	}

	d := &Dispatcher{
		operations: map[string]resourceTable{
			"database": {
				"collections": {
					"list":   h.listCollections,
					"get":    h.getCollection,
					"create": h.createCollection,
					"update": h.updateCollection,
					"delete": h.deleteCollection,
				},
				"documents": {
					"list":   h.listDocuments,
					"get":    h.getDocument,
					"create": h.createDocument,
					"update": h.updateDocument,
					"delete": h.deleteDocument,
				},
				"users": {
					"list":   h.listUsers,
					"get":    h.getUser,
					"create": h.createUser,
					"update": h.updateUser,
					"delete": h.deleteUser,
				},
			},
			"auth": {
				"users": {
					"login":  h.loginUser,
					"verify": h.verifyKey,
				},
				"sessions": {
					"get": h.getSession,
				},
			},
			"storage": {
				"files": {
					"list":   h.listFiles,
					"get":    h.getFile,
					"create": h.registerFile,
					"delete": h.deleteFile,
				},
			},
			"admin": {
				"projects": {
					"list":   h.listProjects,
					"get":    h.getProject,
					"create": h.createProject,
					"update": h.updateProject,
					"delete": h.deleteProject,
				},
				"keys": {
					"list":   h.listKeys,
					"create": h.createKey,
					"delete": h.deleteKey,
				},
				"stats": {
					"get": h.getStats,
				},
			},
			// Recognized but unbuilt surfaces: resolving succeeds, the
			// handler answers 501
			"ai": {
				"chat": {
					"send": notImplemented,
					"list": notImplemented,
				},
				"models": {
					"list": notImplemented,
				},
			},
			"teams": {
				"teams": {
					"list":   notImplemented,
					"create": notImplemented,
				},
				"members": {
					"list": notImplemented,
					"add":  notImplemented,
				},
			},
			"functions": {
				"functions": {
					"list":   notImplemented,
					"invoke": notImplemented,
				},
			},
			"messaging": {
				"messages": {
					"send": notImplemented,
					"list": notImplemented,
				},
			},
		},
		adminOnly: map[string]bool{"admin": true},
	}
	return d
}

// Dispatch resolves the envelope to exactly one handler and invokes it
func (d *Dispatcher) Dispatch(ctx *Context, req *dto.DispatchRequest) (interface{}, error) {
	resources, ok := d.operations[req.Operation]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownOperation, req.Operation)
	}
	actions, ok := resources[req.Resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownResource, req.Resource)
	}
	handler, ok := actions[req.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownAction, req.Action)
	}

	if d.adminOnly[req.Operation] && !ctx.IsAdmin {
		return nil, constants.ErrAdminRequired
	}

	params := req.Params
	if params == nil {
		params = map[string]interface{}{}
	}
	return handler(ctx, params)
}

// Operations enumerates the registered {operation, resource, action} triples,
// primarily for documentation and tests
func (d *Dispatcher) Operations() []string {
	var out []string
	for op, resources := range d.operations {
		for res, actions := range resources {
			for action := range actions {
				out = append(out, op+"."+res+"."+action)
			}
		}
	}
	return out
}

func notImplemented(_ *Context, _ map[string]interface{}) (interface{}, error) {
	return nil, constants.ErrNotImplemented
}
