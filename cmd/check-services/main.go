// Counts active salon services and previews the first few. Read-only.
package main

import (
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salone/credentials"
	"salone/db"
	"salone/globals"
	"salone/models"
	"salone/utils"
)

const previewCount = 5

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

	filter := bson.M{"active": true}
	count, err := conn.Services.CountDocuments(globals.Ctx, filter)
	if err != nil {
		log.Fatalf("[ERR] counting services: %v", err)
	}
	fmt.Println("Active services:", count)

	cursor, err := conn.Services.Find(globals.Ctx, filter, options.Find().SetLimit(previewCount))
	if err != nil {
		log.Fatalf("[ERR] listing services: %v", err)
	}
	defer cursor.Close(globals.Ctx)

	var services []models.ServiceOffering
	if err := cursor.All(globals.Ctx, &services); err != nil {
		log.Fatalf("[ERR] reading services: %v", err)
	}
	for _, svc := range services {
		fmt.Printf("  - %s (%s) - EUR %.2f\n", svc.Name, utils.OrNA(svc.Category), svc.Price)
	}
}
