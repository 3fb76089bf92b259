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

// ProjectStats aggregates per-project usage counters. RequestsToday counts
// requests since UTC midnight.
type ProjectStats struct {
	ProjectID     string `json:"project_id"`
	Collections   int64  `json:"collections"`
	Documents     int64  `json:"documents"`
	Users         int64  `json:"users"`
	Files         int64  `json:"files"`
	StorageBytes  int64  `json:"storage_bytes"`
	RequestsToday int64  `json:"requests_today"`
	RequestsTotal int64  `json:"requests_total"`
}
