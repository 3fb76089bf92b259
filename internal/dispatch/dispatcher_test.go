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
	"testing"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"
	"krapi-api/src/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareDispatcher builds the routing tables without live services. Routing
// and authorization decisions happen before any handler touches a service,
// so these tests never reach one.
func newBareDispatcher() *Dispatcher {
	return NewDispatcher(nil, nil, nil, nil, nil, nil, nil, nil)
}

func adminCtx() *Context {
	return &Context{IsAdmin: true, Admin: &service.AdminContext{AdminID: "admin-1"}}
}

func tenantCtx() *Context {
	return &Context{Tenant: &service.TenantContext{ProjectID: "proj-1", KeyID: "key-1"}}
}

func TestDispatchUnknownSegments(t *testing.T) {
	d := newBareDispatcher()

	cases := []struct {
		name    string
		req     dto.DispatchRequest
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown operation",
			req:     dto.DispatchRequest{Operation: "telepathy", Resource: "collections", Action: "list"},
			wantErr: constants.ErrUnknownOperation,
			wantMsg: "Unknown operation: telepathy",
		},
		{
			name:    "unknown resource",
			req:     dto.DispatchRequest{Operation: "database", Resource: "tables", Action: "list"},
			wantErr: constants.ErrUnknownResource,
			wantMsg: "Unknown resource: tables",
		},
		{
			name:    "unknown action",
			req:     dto.DispatchRequest{Operation: "database", Resource: "documents", Action: "delete_all"},
			wantErr: constants.ErrUnknownAction,
			wantMsg: "Unknown action: delete_all",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Dispatch(adminCtx(), &tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestDispatchAdminOperationRequiresAdmin(t *testing.T) {
	d := newBareDispatcher()

	req := dto.DispatchRequest{Operation: "admin", Resource: "projects", Action: "list"}
	_, err := d.Dispatch(tenantCtx(), &req)
	assert.ErrorIs(t, err, constants.ErrAdminRequired)
}

func TestDispatchUnbuiltSurfacesReturnNotImplemented(t *testing.T) {
	d := newBareDispatcher()

	cases := []dto.DispatchRequest{
		{Operation: "ai", Resource: "chat", Action: "send"},
		{Operation: "teams", Resource: "teams", Action: "list"},
		{Operation: "functions", Resource: "functions", Action: "invoke"},
		{Operation: "messaging", Resource: "messages", Action: "send"},
	}
	for _, req := range cases {
		_, err := d.Dispatch(tenantCtx(), &req)
		assert.ErrorIs(t, err, constants.ErrNotImplemented, "%s.%s.%s", req.Operation, req.Resource, req.Action)
	}
}

func TestDispatchMissingParameterNamesIt(t *testing.T) {
	d := newBareDispatcher()

	// Admin without a project_id cannot scope a database call
	req := dto.DispatchRequest{Operation: "database", Resource: "collections", Action: "list"}
	_, err := d.Dispatch(adminCtx(), &req)
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrMissingParameter)
	assert.Contains(t, err.Error(), "project_id")

	// Key callers carry no admin rights and no fallback scope
	_, err = d.Dispatch(&Context{}, &req)
	assert.ErrorIs(t, err, constants.ErrInvalidAPIKey)
}

func TestDispatchVerifyEchoesTenant(t *testing.T) {
	d := newBareDispatcher()

	req := dto.DispatchRequest{Operation: "auth", Resource: "users", Action: "verify"}
	result, err := d.Dispatch(tenantCtx(), &req)
	require.NoError(t, err)

	resp, ok := result.(*dto.VerifyKeyResponse)
	require.True(t, ok)
	assert.Equal(t, "proj-1", resp.ProjectID)

	_, err = d.Dispatch(adminCtx(), &req)
	assert.ErrorIs(t, err, constants.ErrInvalidAPIKey)
}

func TestOperationsEnumeratesTriples(t *testing.T) {
	d := newBareDispatcher()

	ops := d.Operations()
	assert.Contains(t, ops, "database.documents.create")
	assert.Contains(t, ops, "admin.stats.get")
	assert.Contains(t, ops, "storage.files.list")
}
