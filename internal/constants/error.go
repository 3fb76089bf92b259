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

package constants

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectExists    = errors.New("project already exists with the given id")
	ErrInvalidProjectID = errors.New("invalid project id")
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionExists   = errors.New("collection already exists in project")
	ErrInvalidSchema      = errors.New("invalid collection schema")
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidDocument  = errors.New("invalid document data")
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists in project")
	ErrUserInactive    = errors.New("user account is deactivated")
)

var (
	ErrAPIKeyNotFound = errors.New("API key not found")
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrAPIKeyInactive = errors.New("API key is inactive")
	ErrAPIKeyExpired  = errors.New("API key has expired")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminNotFound      = errors.New("administrator account not found")
	ErrAdminDeactivated   = errors.New("administrator account is deactivated")
	ErrAdminRequired      = errors.New("administrator privileges required")
)

var (
	ErrFileNotFound = errors.New("file not found")
)

// Dispatch errors carry the unresolved segment name appended by the
// dispatcher, e.g. "Unknown action: delete_all". The capitalized text is the
// wire-visible debugging signal for API consumers.
var (
	ErrUnknownOperation = errors.New("Unknown operation")
	ErrUnknownResource  = errors.New("Unknown resource")
	ErrUnknownAction    = errors.New("Unknown action")
	ErrNotImplemented   = errors.New("not implemented")
	ErrMissingParameter = errors.New("missing required parameter")
)
