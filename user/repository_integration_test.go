package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"jobboard/db"
	"jobboard/test/infra"
)

// TestMongoRepository_Integration verifies that the unique email index backs
// the duplicate guard at the store level, not just the service pre-check.
func TestMongoRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, uri, err := infra.StartMongo7(ctx, "")
	if err != nil {
		t.Skipf("no MongoDB available: %v", err)
	}
	t.Cleanup(func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel2()
		_ = container.Terminate(ctx2)
	})

	client, err := db.Connect(ctx, uri)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	database := client.Database(fmt.Sprintf("jobdb_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() { _ = database.Drop(context.Background()) })

	repo := NewRepository(database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	// a second call against the existing index must not fail
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes (repeat): %v", err)
	}

	id, err := repo.Insert(ctx, User{
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      RoleUser,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// the index must reject a second document for the same email even when
	// the service pre-check is bypassed entirely
	_, err = repo.Insert(ctx, User{
		Email:  "alice@example.com",
		Name:   "Impostor",
		Role:   RoleUser,
		Status: StatusActive,
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(users))
	}

	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if stored.ID != id || stored.Name != "Alice" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
}
