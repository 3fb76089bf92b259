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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"krapi-api/src/internal/constants"
	"krapi-api/src/internal/dto"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized (status, envelope) pair
func makeError(status int, message string) (int, dto.Envelope) {
	return status, NewErrorEnvelope(message)
}

// FormatValidationError converts validator errors to user-friendly messages
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := strings.ToLower(fieldError.Field())
		messages = append(messages, getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param()))
	}
	return strings.Join(messages, "; ")
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to an HTTP
// status and error envelope. Unrecognized errors become an opaque 500: the
// underlying cause is for server logs, never the response body.
func GetErrorResponse(err error) (int, dto.Envelope) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return makeError(http.StatusBadRequest, formatValidationError(validationErrors))
	}

	switch {
	// Project errors
	case errors.Is(err, constants.ErrProjectNotFound):
		return makeError(http.StatusNotFound, "Project not found")
	case errors.Is(err, constants.ErrProjectExists):
		return makeError(http.StatusConflict, "Project already exists with the given id")
	case errors.Is(err, constants.ErrInvalidProjectID):
		return makeError(http.StatusBadRequest, "Invalid project id")

	// Collection errors
	case errors.Is(err, constants.ErrCollectionNotFound):
		return makeError(http.StatusNotFound, "Collection not found")
	case errors.Is(err, constants.ErrCollectionExists):
		return makeError(http.StatusConflict, "Collection with this name already exists in the project")
	case errors.Is(err, constants.ErrInvalidSchema):
		return makeError(http.StatusBadRequest, "Invalid collection schema")

	// Document errors
	case errors.Is(err, constants.ErrDocumentNotFound):
		return makeError(http.StatusNotFound, "Document not found")
	case errors.Is(err, constants.ErrInvalidDocument):
		return makeError(http.StatusBadRequest, "Invalid document data")

	// Project user errors
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrUserEmailExists):
		return makeError(http.StatusConflict, "User with this email already exists in the project")
	case errors.Is(err, constants.ErrUserInactive):
		return makeError(http.StatusUnauthorized, "User account is deactivated")

	// Credential errors
	case errors.Is(err, constants.ErrAPIKeyNotFound):
		return makeError(http.StatusNotFound, "API key not found")
	case errors.Is(err, constants.ErrInvalidAPIKey):
		return makeError(http.StatusUnauthorized, "Invalid API key")
	case errors.Is(err, constants.ErrAPIKeyInactive):
		return makeError(http.StatusUnauthorized, "API key is inactive")
	case errors.Is(err, constants.ErrAPIKeyExpired):
		return makeError(http.StatusUnauthorized, "API key has expired")
	case errors.Is(err, constants.ErrInvalidCredentials):
		return makeError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, constants.ErrInvalidToken):
		return makeError(http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, constants.ErrAdminNotFound), errors.Is(err, constants.ErrAdminDeactivated):
		return makeError(http.StatusUnauthorized, "Administrator account is not available")
	case errors.Is(err, constants.ErrAdminRequired):
		return makeError(http.StatusForbidden, "Administrator privileges required")

	// File errors
	case errors.Is(err, constants.ErrFileNotFound):
		return makeError(http.StatusNotFound, "File not found")

	// Dispatch errors: err.Error() carries the unresolved segment name,
	// e.g. "Unknown action: delete_all"
	case errors.Is(err, constants.ErrUnknownOperation),
		errors.Is(err, constants.ErrUnknownResource),
		errors.Is(err, constants.ErrUnknownAction):
		return makeError(http.StatusBadRequest, err.Error())
	case errors.Is(err, constants.ErrNotImplemented):
		return makeError(http.StatusNotImplemented, "Not implemented")
	case errors.Is(err, constants.ErrMissingParameter):
		return makeError(http.StatusBadRequest, err.Error())

	// Default case for unknown errors
	default:
		return makeError(http.StatusInternalServerError, "Internal Server Error")
	}
}
