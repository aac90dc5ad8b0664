package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salone/db"
	"salone/models"
)

// Report sums up one seeding pass. Added+Skipped < Total means some inserts
// failed and were left behind.
type Report struct {
	Added   int
	Skipped int
	Total   int
}

// Seed applies the fixed catalog. See SeedCatalog.
func Seed(ctx context.Context, services db.Collection) Report {
	return SeedCatalog(ctx, services, Catalog)
}

// SeedCatalog inserts every catalog entry not already present, in catalog
// order. Presence is an exact name match, whatever the record's active flag —
// seeding never touches an existing entry. A failed check or insert is logged
// and the pass moves on to the next entry.
func SeedCatalog(ctx context.Context, services db.Collection, catalog []models.ServiceOffering) Report {
	report := Report{Total: len(catalog)}

	for _, svc := range catalog {
		err := services.FindOne(ctx, bson.M{"name": svc.Name}).Err()
		if err == nil {
			log.Printf("  [SKIP] %s - already present", svc.Name)
			report.Skipped++
			continue
		}
		if err != mongo.ErrNoDocuments {
			log.Printf("  [ERR] checking %s: %v", svc.Name, err)
			continue
		}

		now := time.Now().UTC()
		svc.CreatedAt = now
		svc.UpdatedAt = now
		if _, err := services.InsertOne(ctx, svc); err != nil {
			log.Printf("  [ERR] adding %s: %v", svc.Name, err)
			continue
		}
		log.Printf("  [OK] %s - EUR %.2f (%dmin) - %s", svc.Name, svc.Price, svc.Duration, svc.Category)
		report.Added++
	}
	return report
}
