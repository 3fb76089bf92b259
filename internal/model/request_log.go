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

package model

import (
	"time"
)

// RequestLog is an append-only record of one handled request, attributed to a
// project and API key when the caller presented one. Never mutated after
// insert.
type RequestLog struct {
	UUID        string    `json:"uuid" db:"uuid"`
	ProjectUUID *string   `json:"project_id,omitempty" db:"project_uuid"`
	APIKeyUUID  *string   `json:"api_key_id,omitempty" db:"api_key_uuid"`
	Method      string    `json:"method" db:"method"`
	Path        string    `json:"path" db:"path"`
	StatusCode  int       `json:"status_code" db:"status_code"`
	LatencyMS   int64     `json:"latency_ms" db:"latency_ms"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the RequestLog model
func (RequestLog) TableName() string {
	return "api_request_logs"
}
