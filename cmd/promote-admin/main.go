// Promotes an existing identity-service user to admin. The account must
// already exist; a missing or deactivated admin record is created or
// reactivated by the merge.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"

	"salone/auth"
	"salone/credentials"
	"salone/db"
	"salone/globals"
	"salone/rdx"
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

	fmt.Println("\nPromote existing user to admin")
	utils.Banner()

	email := utils.Prompt("User email: ")
	if email == "" {
		log.Fatal("[ERR] email is required")
	}

	fmt.Printf("\nLooking up user %s...\n", email)
	user, err := auth.GetUserByEmail(globals.Ctx, conn.AuthUsers, email)
	if errors.Is(err, auth.ErrUserNotFound) {
		fmt.Printf("[ERR] no user found with email %s\n", email)
		fmt.Println("\nHint: create the user first, e.g. with create-admin.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	fmt.Println("[OK] User found with UID:", user.UID)

	res, err := db.Upsert(globals.Ctx, conn.Admins,
		db.Key{Field: "uid", Value: user.UID},
		bson.M{"active": true, "email": user.Email, "name": user.DisplayName},
		db.MergeExisting)
	if err != nil {
		log.Fatalf("[ERR] writing admin record: %v", err)
	}
	rdx.InvalidateAdmin(user.Email)

	fmt.Println()
	utils.Banner()
	fmt.Println("[OK] Summary:")
	fmt.Println("  UID:   ", user.UID)
	fmt.Println("  Email: ", user.Email)
	fmt.Println("  Name:  ", utils.OrNA(user.DisplayName))
	fmt.Printf("  Status: active (%s)\n", res.Outcome)
	fmt.Println("\nThe user can now access the admin area.")
}
