package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salone/models"
)

// fakeCollection backs the seeder tests with an in-memory document list.
// insertErrOn fails the insert whose document name matches, to exercise the
// keep-going-on-error path.
type fakeCollection struct {
	docs        []bson.M
	insertErrOn string
}

func toM(document interface{}) bson.M {
	raw, err := bson.Marshal(document)
	if err != nil {
		panic(err)
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		panic(err)
	}
	return d
}

func (f *fakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	q := toM(filter)
	for _, d := range f.docs {
		match := true
		for k, v := range q {
			if d[k] != v {
				match = false
				break
			}
		}
		if match {
			return mongo.NewSingleResultFromDocument(d, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)
}

func (f *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	d := toM(document)
	if f.insertErrOn != "" && d["name"] == f.insertErrOn {
		return nil, errors.New("transient transport error")
	}
	f.docs = append(f.docs, d)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) UpdateOne(_ context.Context, _, _ interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

var ctx = context.Background()

var smallCatalog = []models.ServiceOffering{
	{Name: "Taglio Donna", Duration: 45, Price: 35.00, Active: true},
	{Name: "Piega", Duration: 30, Price: 20.00, Active: true},
}

func TestSeedCatalogIntoEmptyStore(t *testing.T) {
	services := &fakeCollection{}

	report := SeedCatalog(ctx, services, smallCatalog)
	assert.Equal(t, Report{Added: 2, Skipped: 0, Total: 2}, report)
	require.Len(t, services.docs, 2)
	assert.NotNil(t, services.docs[0]["createdAt"])
	assert.NotNil(t, services.docs[0]["updatedAt"])
}

func TestSeedCatalogIsNotDuplicating(t *testing.T) {
	services := &fakeCollection{}

	first := SeedCatalog(ctx, services, smallCatalog)
	assert.Equal(t, Report{Added: 2, Skipped: 0, Total: 2}, first)

	second := SeedCatalog(ctx, services, smallCatalog)
	assert.Equal(t, Report{Added: 0, Skipped: 2, Total: 2}, second)
	assert.Len(t, services.docs, 2)
}

func TestSeedSkipsInactiveEntriesToo(t *testing.T) {
	services := &fakeCollection{docs: []bson.M{
		{"name": "Piega", "active": false},
	}}

	report := SeedCatalog(ctx, services, smallCatalog)
	assert.Equal(t, Report{Added: 1, Skipped: 1, Total: 2}, report)

	// No merge, no reactivation: the seeder leaves existing records alone.
	for _, d := range services.docs {
		if d["name"] == "Piega" {
			assert.Equal(t, false, d["active"])
		}
	}
}

func TestSeedContinuesPastFailedInsert(t *testing.T) {
	services := &fakeCollection{insertErrOn: "Taglio Donna"}

	report := SeedCatalog(ctx, services, smallCatalog)
	assert.Equal(t, Report{Added: 1, Skipped: 0, Total: 2}, report)
	assert.Less(t, report.Added+report.Skipped, report.Total, "partial success shows in the counts")
	require.Len(t, services.docs, 1)
	assert.Equal(t, "Piega", services.docs[0]["name"])
}

func TestSeedFullCatalog(t *testing.T) {
	services := &fakeCollection{}

	report := Seed(ctx, services)
	assert.Equal(t, Report{Added: len(Catalog), Skipped: 0, Total: len(Catalog)}, report)

	again := Seed(ctx, services)
	assert.Equal(t, Report{Added: 0, Skipped: len(Catalog), Total: len(Catalog)}, again)
}

func TestEnsureConfigCreatesDefaultsOnce(t *testing.T) {
	settings := &fakeCollection{}

	cfg, created, err := EnsureConfig(ctx, settings)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "09:00", cfg.OpeningTime)
	assert.Equal(t, "19:00", cfg.ClosingTime)
	assert.Equal(t, 15, cfg.TimeStep)
	assert.Equal(t, 3, cfg.Resources)
	assert.Equal(t, 10, cfg.BufferTime)
	assert.Empty(t, cfg.ClosedDaysOfWeek)
	assert.Empty(t, cfg.ClosedDates)
	require.Len(t, settings.docs, 1)
	assert.Equal(t, ConfigDocID, settings.docs[0]["_id"])

	cfg2, created, err := EnsureConfig(ctx, settings)
	require.NoError(t, err)
	assert.False(t, created, "an existing config is read, not rewritten")
	assert.Equal(t, cfg.OpeningTime, cfg2.OpeningTime)
	require.Len(t, settings.docs, 1)
}
