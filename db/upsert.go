package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salone/globals"
)

// Collection is the slice of *mongo.Collection the upserter needs. Tests
// substitute an in-memory implementation.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// Key is the natural key an upsert matches on: an email, a username, a
// service name. Not the store's primary key.
type Key struct {
	Field string
	Value string
}

// Policy says what to do when the record already exists and is active.
type Policy int

const (
	SkipExisting Policy = iota
	MergeExisting
)

type Outcome string

const (
	Created Outcome = "created"
	Merged  Outcome = "merged"
	Skipped Outcome = "skipped"
)

// UpsertResult reports which branch ran and the record's resulting fields.
type UpsertResult struct {
	Outcome Outcome
	Record  bson.M
}

// Upsert looks up at most one record matching key and creates, merges or
// skips it. Merging is a field-level union: fields absent from patch survive
// on the record. An inactive record is always reactivated on contact instead
// of duplicated, whatever the policy says. Safe to invoke any number of times
// with the same key and patch.
//
// Two processes racing on the same key can still double-insert; single
// operator, single terminal is the assumption here.
func Upsert(ctx context.Context, coll Collection, key Key, patch bson.M, onExisting Policy) (UpsertResult, error) {
	filter := bson.M{key.Field: key.Value}

	var existing bson.M
	err := coll.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		now := time.Now().UTC()
		doc := bson.M{key.Field: key.Value}
		for f, v := range patch {
			doc[f] = v
		}
		doc["createdAt"] = now
		doc["updatedAt"] = now
		doc["createdBy"] = globals.Actor
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			return UpsertResult{}, fmt.Errorf("insert %s=%s: %w", key.Field, key.Value, err)
		}
		return UpsertResult{Outcome: Created, Record: doc}, nil
	case err != nil:
		return UpsertResult{}, fmt.Errorf("lookup %s=%s: %w", key.Field, key.Value, err)
	}

	active, _ := existing["active"].(bool)
	if active && onExisting == SkipExisting {
		return UpsertResult{Outcome: Skipped, Record: existing}, nil
	}

	set := bson.M{}
	for f, v := range patch {
		set[f] = v
	}
	if !active {
		set["active"] = true // reactivate rather than duplicate
	}
	set["updatedAt"] = time.Now().UTC()
	set["updatedBy"] = globals.Actor
	if _, err := coll.UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return UpsertResult{}, fmt.Errorf("update %s=%s: %w", key.Field, key.Value, err)
	}

	for f, v := range set {
		existing[f] = v
	}
	return UpsertResult{Outcome: Merged, Record: existing}, nil
}
