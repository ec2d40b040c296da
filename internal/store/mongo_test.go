package store

import (
	"context"
	"os"
	"testing"

	"github.com/enerdev/turbine-parts/internal/models"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestMongoStore_NilCollection(t *testing.T) {
	s := &MongoStore{Collection: nil}
	if _, err := s.Load(context.Background()); err == nil {
		t.Error("expected error when collection is nil")
	}
	if err := s.Save(context.Background(), models.NewDocument()); err == nil {
		t.Error("expected error when collection is nil")
	}
}

// Integration test (requires running MongoDB)
func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" || uri == "uri" {
		t.Skip("MONGO_URI not set or invalid, skipping integration test")
		return
	}
	client, err := ConnectMongo()
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "turbine_parts"
	}
	s := NewMongoStore(client.Database(dbName).Collection("tracker_test"))

	doc := models.NewDocument()
	doc.Turbines = append(doc.Turbines, models.Turbine{TurbineID: 1, SerialNumber: "T-SN-101"})
	if err := s.Save(context.Background(), doc); err != nil {
		t.Fatalf("expected save to succeed, got error: %v", err)
	}

	loaded, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got error: %v", err)
	}
	if len(loaded.Turbines) != 1 || loaded.Turbines[0].SerialNumber != "T-SN-101" {
		t.Errorf("unexpected round-trip result: %+v", loaded.Turbines)
	}
}
