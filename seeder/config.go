package seeder

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salone/db"
	"salone/models"
)

// ConfigDocID is the fixed key of the salon configuration singleton in the
// settings collection.
const ConfigDocID = "config"

func DefaultConfig() models.SalonConfig {
	return models.SalonConfig{
		ID:               ConfigDocID,
		OpeningTime:      "09:00",
		ClosingTime:      "19:00",
		TimeStep:         15,
		Resources:        3,
		BufferTime:       10,
		ClosedDaysOfWeek: []int{},
		ClosedDates:      []string{},
	}
}

// EnsureConfig creates the settings/config singleton with defaults when it is
// missing and reports created=true. An existing document is returned as-is,
// never modified.
func EnsureConfig(ctx context.Context, settings db.Collection) (models.SalonConfig, bool, error) {
	var cfg models.SalonConfig
	err := settings.FindOne(ctx, bson.M{"_id": ConfigDocID}).Decode(&cfg)
	if err == nil {
		return cfg, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.SalonConfig{}, false, fmt.Errorf("read salon config: %w", err)
	}

	cfg = DefaultConfig()
	if _, err := settings.InsertOne(ctx, cfg); err != nil {
		return models.SalonConfig{}, false, fmt.Errorf("create salon config: %w", err)
	}
	return cfg, true, nil
}
