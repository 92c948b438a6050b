package userRepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRepo(t *testing.T) *MongoUserRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, uri)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	db := client.Database("doctors_portal_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(cleanupCtx)
		_ = database.Disconnect(client)
	})

	repo := NewMongoUserRepo(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	return repo
}

func TestMongoUserRepo_UpsertAndRole(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "a@x.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	res, err := repo.UpsertProfile(ctx, "a@x.com", models.UserProfile{Name: "Alice"})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	if res.UpsertedCount != 1 {
		t.Errorf("expected one upsert, got %+v", res)
	}

	res, err = repo.UpsertProfile(ctx, "a@x.com", models.UserProfile{})
	if err != nil {
		t.Fatalf("second UpsertProfile failed: %v", err)
	}
	if res.MatchedCount != 1 || res.UpsertedCount != 0 {
		t.Errorf("expected match without upsert, got %+v", res)
	}

	if _, err := repo.SetRole(ctx, "a@x.com", models.RoleAdmin); err != nil {
		t.Fatalf("SetRole failed: %v", err)
	}
	u, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Name != "Alice" || !u.IsAdmin() {
		t.Errorf("unexpected user %+v", u)
	}

	res, err = repo.SetRole(ctx, "nobody@x.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole on unknown user failed: %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("expected no match for unknown user, got %+v", res)
	}
}
