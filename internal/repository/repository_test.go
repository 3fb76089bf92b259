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

package repository

import (
	"path/filepath"
	"testing"
	"time"

	"krapi-api/src/config"
	"krapi-api/src/internal/database"
	"krapi-api/src/internal/model"

	"github.com/google/uuid"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := &config.Database{
		Driver:          "sqlite3",
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 300,
	}
	db, err := database.NewConnection(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.InitSchema("../database/schema.sql"); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestProject(t *testing.T, db *database.DB, name string) *model.Project {
	t.Helper()

	now := time.Now().UTC()
	project := &model.Project{
		UUID:      uuid.New().String(),
		Name:      name,
		Settings:  "{}",
		Status:    model.ProjectStatusActive,
		CreatedBy: "test",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := NewProjectRepo(db).CreateProject(project); err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}

func newTestCollection(t *testing.T, db *database.DB, projectUUID, name string) *model.Collection {
	t.Helper()

	now := time.Now().UTC()
	collection := &model.Collection{
		UUID:        uuid.New().String(),
		ProjectUUID: projectUUID,
		Name:        name,
		Schema:      "{}",
		Indexes:     "[]",
		Permissions: "{}",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := NewCollectionRepo(db).CreateCollection(collection); err != nil {
		t.Fatalf("failed to create collection %s: %v", name, err)
	}
	return collection
}

func newTestDocument(t *testing.T, db *database.DB, collectionUUID, projectUUID string) *model.Document {
	t.Helper()

	now := time.Now().UTC()
	doc := &model.Document{
		UUID:           uuid.New().String(),
		CollectionUUID: collectionUUID,
		ProjectUUID:    projectUUID,
		Data:           `{"k":"v"}`,
		CreatedBy:      "test",
		UpdatedBy:      "test",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := NewDocumentRepo(db).CreateDocument(doc)
	if err != nil {
		t.Fatalf("failed to create document: %v", err)
	}
	if !created {
		t.Fatalf("document not created: collection %s not found in project %s", collectionUUID, projectUUID)
	}
	return doc
}

func TestDocumentCounterIntegrity(t *testing.T) {
	db := setupTestDB(t)
	project := newTestProject(t, db, "counter")
	collection := newTestCollection(t, db, project.UUID, "items")

	collectionRepo := NewCollectionRepo(db)
	documentRepo := NewDocumentRepo(db)

	assertCount := func(want int) {
		t.Helper()
		got, err := collectionRepo.GetCollectionByUUID(collection.UUID, project.UUID)
		if err != nil {
			t.Fatalf("failed to load collection: %v", err)
		}
		if got.DocumentCount != want {
			t.Errorf("document_count = %d, want %d", got.DocumentCount, want)
		}
	}

	first := newTestDocument(t, db, collection.UUID, project.UUID)
	second := newTestDocument(t, db, collection.UUID, project.UUID)
	assertCount(2)

	// Interleave deletes and creates
	deleted, err := documentRepo.DeleteDocument(first.UUID, project.UUID)
	if err != nil || !deleted {
		t.Fatalf("DeleteDocument = %v, %v; want true, nil", deleted, err)
	}
	assertCount(1)

	newTestDocument(t, db, collection.UUID, project.UUID)
	assertCount(2)

	// Deleting a missing document must not move the counter
	deleted, err = documentRepo.DeleteDocument(uuid.New().String(), project.UUID)
	if err != nil {
		t.Fatalf("DeleteDocument unexpected error: %v", err)
	}
	if deleted {
		t.Error("DeleteDocument reported true for a missing document")
	}
	assertCount(2)

	// Deleting the same document twice decrements only once
	deleted, err = documentRepo.DeleteDocument(second.UUID, project.UUID)
	if err != nil || !deleted {
		t.Fatalf("DeleteDocument = %v, %v; want true, nil", deleted, err)
	}
	deleted, _ = documentRepo.DeleteDocument(second.UUID, project.UUID)
	if deleted {
		t.Error("second delete of the same document reported true")
	}
	assertCount(1)
}

func TestDocumentCreateRejectsForeignCollection(t *testing.T) {
	db := setupTestDB(t)
	p1 := newTestProject(t, db, "alpha")
	p2 := newTestProject(t, db, "beta")
	collection := newTestCollection(t, db, p1.UUID, "items")

	now := time.Now().UTC()
	doc := &model.Document{
		UUID:           uuid.New().String(),
		CollectionUUID: collection.UUID,
		ProjectUUID:    p2.UUID, // wrong project for this collection
		Data:           "{}",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := NewDocumentRepo(db).CreateDocument(doc)
	if err != nil {
		t.Fatalf("CreateDocument unexpected error: %v", err)
	}
	if created {
		t.Error("CreateDocument accepted a collection owned by another project")
	}

	got, err := NewCollectionRepo(db).GetCollectionByUUID(collection.UUID, p1.UUID)
	if err != nil {
		t.Fatalf("failed to load collection: %v", err)
	}
	if got.DocumentCount != 0 {
		t.Errorf("document_count = %d after rejected create, want 0", got.DocumentCount)
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	project := newTestProject(t, db, "doomed")
	collection := newTestCollection(t, db, project.UUID, "items")
	doc := newTestDocument(t, db, collection.UUID, project.UUID)

	now := time.Now().UTC()
	userRepo := NewProjectUserRepo(db)
	user := &model.ProjectUser{
		UUID:           uuid.New().String(),
		ProjectUUID:    project.UUID,
		Email:          "user@example.com",
		PasswordHash:   "x",
		IsActive:       true,
		OAuthProviders: "[]",
		Preferences:    "{}",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := userRepo.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	keyRepo := NewAPIKeyRepo(db)
	key := &model.APIKey{
		UUID:        uuid.New().String(),
		ProjectUUID: project.UUID,
		Name:        "default",
		KeyValue:    "krapi_test_cascade",
		Permissions: `["*"]`,
		Status:      model.APIKeyStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := keyRepo.CreateAPIKey(key); err != nil {
		t.Fatalf("failed to create api key: %v", err)
	}

	deleted, err := NewProjectRepo(db).DeleteProject(project.UUID)
	if err != nil || !deleted {
		t.Fatalf("DeleteProject = %v, %v; want true, nil", deleted, err)
	}

	if got, _ := NewCollectionRepo(db).GetCollectionByUUID(collection.UUID, project.UUID); got != nil {
		t.Error("collection survived project delete")
	}
	if got, _ := NewDocumentRepo(db).GetDocumentByUUID(doc.UUID, project.UUID); got != nil {
		t.Error("document survived project delete")
	}
	if got, _ := userRepo.GetUserByUUID(user.UUID, project.UUID); got != nil {
		t.Error("user survived project delete")
	}
	if got, _ := keyRepo.GetAPIKeyByValue(key.KeyValue); got != nil {
		t.Error("api key survived project delete")
	}
}

func TestCollectionNameUniquePerProject(t *testing.T) {
	db := setupTestDB(t)
	p1 := newTestProject(t, db, "alpha")
	p2 := newTestProject(t, db, "beta")
	newTestCollection(t, db, p1.UUID, "items")

	now := time.Now().UTC()
	dup := &model.Collection{
		UUID:        uuid.New().String(),
		ProjectUUID: p1.UUID,
		Name:        "items",
		Schema:      "{}",
		Indexes:     "[]",
		Permissions: "{}",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := NewCollectionRepo(db).CreateCollection(dup); err == nil {
		t.Error("duplicate collection name in the same project was accepted")
	}

	// Same name in another project is fine
	newTestCollection(t, db, p2.UUID, "items")
}

func TestUserEmailUniquePerProject(t *testing.T) {
	db := setupTestDB(t)
	p1 := newTestProject(t, db, "alpha")
	p2 := newTestProject(t, db, "beta")

	userRepo := NewProjectUserRepo(db)
	makeUser := func(projectUUID string) error {
		now := time.Now().UTC()
		return userRepo.CreateUser(&model.ProjectUser{
			UUID:           uuid.New().String(),
			ProjectUUID:    projectUUID,
			Email:          "same@example.com",
			PasswordHash:   "x",
			IsActive:       true,
			OAuthProviders: "[]",
			Preferences:    "{}",
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := makeUser(p1.UUID); err != nil {
		t.Fatalf("first user: %v", err)
	}
	if err := makeUser(p1.UUID); err == nil {
		t.Error("duplicate email in the same project was accepted")
	}
	if err := makeUser(p2.UUID); err != nil {
		t.Errorf("same email in another project rejected: %v", err)
	}
}

func TestProjectIsolation(t *testing.T) {
	db := setupTestDB(t)
	p1 := newTestProject(t, db, "alpha")
	p2 := newTestProject(t, db, "beta")
	c1 := newTestCollection(t, db, p1.UUID, "only-in-alpha")

	collectionRepo := NewCollectionRepo(db)

	// Lookups scoped to the wrong project behave as if the row does not exist
	got, err := collectionRepo.GetCollectionByUUID(c1.UUID, p2.UUID)
	if err != nil {
		t.Fatalf("GetCollectionByUUID unexpected error: %v", err)
	}
	if got != nil {
		t.Error("collection visible from another project")
	}

	list, err := collectionRepo.ListCollectionsByProject(p2.UUID, 50, 0)
	if err != nil {
		t.Fatalf("ListCollectionsByProject: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("project beta lists %d collections, want 0", len(list))
	}

	deleted, err := collectionRepo.DeleteCollection(c1.UUID, p2.UUID)
	if err != nil {
		t.Fatalf("DeleteCollection unexpected error: %v", err)
	}
	if deleted {
		t.Error("cross-project delete reported success")
	}
}

func TestAPIKeyLastUsedAdvances(t *testing.T) {
	db := setupTestDB(t)
	project := newTestProject(t, db, "alpha")

	now := time.Now().UTC().Truncate(time.Second)
	keyRepo := NewAPIKeyRepo(db)
	key := &model.APIKey{
		UUID:        uuid.New().String(),
		ProjectUUID: project.UUID,
		Name:        "default",
		KeyValue:    "krapi_test_lastused",
		Permissions: `["*"]`,
		Status:      model.APIKeyStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := keyRepo.CreateAPIKey(key); err != nil {
		t.Fatalf("failed to create api key: %v", err)
	}

	used := now.Add(time.Minute)
	if err := keyRepo.UpdateLastUsed(key.UUID, used); err != nil {
		t.Fatalf("UpdateLastUsed: %v", err)
	}

	got, err := keyRepo.GetAPIKeyByValue(key.KeyValue)
	if err != nil {
		t.Fatalf("GetAPIKeyByValue: %v", err)
	}
	if got.LastUsed == nil || !got.LastUsed.Equal(used) {
		t.Errorf("last_used = %v, want %v", got.LastUsed, used)
	}
}

func TestRequestLogCountSince(t *testing.T) {
	db := setupTestDB(t)
	project := newTestProject(t, db, "alpha")

	logRepo := NewRequestLogRepo(db)
	insert := func(at time.Time) {
		t.Helper()
		entry := &model.RequestLog{
			UUID:        uuid.New().String(),
			ProjectUUID: &project.UUID,
			Method:      "GET",
			Path:        "/collections",
			StatusCode:  200,
			LatencyMS:   3,
			CreatedAt:   at,
		}
		if err := logRepo.InsertLog(entry); err != nil {
			t.Fatalf("InsertLog: %v", err)
		}
	}

	now := time.Now().UTC()
	insert(now.Add(-48 * time.Hour))
	insert(now.Add(-time.Hour))
	insert(now)

	total, err := logRepo.CountByProject(project.UUID)
	if err != nil {
		t.Fatalf("CountByProject: %v", err)
	}
	if total != 3 {
		t.Errorf("total requests = %d, want 3", total)
	}

	recent, err := logRepo.CountByProjectSince(project.UUID, now.Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("CountByProjectSince: %v", err)
	}
	if recent != 2 {
		t.Errorf("recent requests = %d, want 2", recent)
	}
}

func TestPaginationBounds(t *testing.T) {
	db := setupTestDB(t)
	project := newTestProject(t, db, "alpha")
	for _, name := range []string{"a", "b", "c"} {
		newTestCollection(t, db, project.UUID, name)
	}

	collectionRepo := NewCollectionRepo(db)
	page, err := collectionRepo.ListCollectionsByProject(project.UUID, 2, 0)
	if err != nil {
		t.Fatalf("ListCollectionsByProject: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}

	rest, err := collectionRepo.ListCollectionsByProject(project.UUID, 2, 2)
	if err != nil {
		t.Fatalf("ListCollectionsByProject: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("second page size = %d, want 1", len(rest))
	}
}
