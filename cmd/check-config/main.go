// Prints the current salon configuration. Read-only; run seed-services to
// create it when missing.
package main

import (
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salone/credentials"
	"salone/db"
	"salone/globals"
	"salone/models"
	"salone/seeder"
)

func main() {
	credentials.LoadEnv()

	id, err := credentials.Resolve(os.Getenv)
	if err != nil {
		log.Fatalf("[ERR] %v", err)
	}

	conn, err := db.Connect(globals.Ctx, id)
	if err != nil {
		log.Fatalf("[ERR] connection failed: %v", err)
	}

	var cfg models.SalonConfig
	err = conn.Settings.FindOne(globals.Ctx, bson.M{"_id": seeder.ConfigDocID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		fmt.Println("Salon config not found. Run seed-services to create the defaults.")
		return
	}
	if err != nil {
		log.Fatalf("[ERR] reading salon config: %v", err)
	}

	fmt.Println("Salon config:")
	fmt.Println("  openingTime:     ", cfg.OpeningTime)
	fmt.Println("  closingTime:     ", cfg.ClosingTime)
	fmt.Println("  timeStep:        ", cfg.TimeStep)
	fmt.Println("  resources:       ", cfg.Resources)
	fmt.Println("  bufferTime:      ", cfg.BufferTime)
	fmt.Println("  closedDaysOfWeek:", cfg.ClosedDaysOfWeek)
	fmt.Println("  closedDates:     ", cfg.ClosedDates)
}
