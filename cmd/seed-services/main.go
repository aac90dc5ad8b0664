// Seeds the reference catalog of salon services and the default salon
// configuration. Existing entries are never touched; re-running is safe.
package main

import (
	"fmt"
	"log"
	"os"

	"salone/credentials"
	"salone/db"
	"salone/globals"
	"salone/rdx"
	"salone/seeder"
	"salone/utils"
)

func main() {
	fmt.Println("Initializing admin toolkit...")
	credentials.LoadEnv()

	id, err := credentials.Resolve(os.Getenv)
	if err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	rdx.Init()

	conn, err := db.Connect(globals.Ctx, id)
	if err != nil {
		log.Fatalf("[ERR] connection failed: %v", err)
	}
	fmt.Println("[OK] Connected to", id.ProjectID)

	fmt.Println("\nSeeding salon services...")
	report := seeder.Seed(globals.Ctx, conn.Services)
	if report.Added > 0 {
		rdx.InvalidateServices()
	}

	fmt.Println("\nChecking salon configuration...")
	cfg, created, err := seeder.EnsureConfig(globals.Ctx, conn.Settings)
	switch {
	case err != nil:
		// Config trouble doesn't undo the service seeding; report and move on.
		log.Printf("[ERR] salon config: %v", err)
	case created:
		fmt.Println("[OK] Default salon config created")
	default:
		fmt.Println("[OK] Salon config already present:")
		fmt.Println("  openingTime:", cfg.OpeningTime)
		fmt.Println("  closingTime:", cfg.ClosingTime)
		fmt.Println("  timeStep:   ", cfg.TimeStep)
		fmt.Println("  resources:  ", cfg.Resources)
		fmt.Println("  bufferTime: ", cfg.BufferTime)
	}

	fmt.Println()
	utils.Banner()
	fmt.Println("[OK] Done")
	fmt.Printf("  - %d services added\n", report.Added)
	fmt.Printf("  - %d services already present (skipped)\n", report.Skipped)
	fmt.Printf("  - total: %d services\n", report.Total)
}
