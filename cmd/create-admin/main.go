// Interactive admin creation: registers a new account with the identity
// service and writes its uid-keyed record into the admins collection.
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

	fmt.Println("\nCreate admin user")
	utils.Banner()

	email := utils.Prompt("Admin email: ")
	if email == "" {
		log.Fatal("[ERR] email is required")
	}
	password := utils.Prompt(fmt.Sprintf("Password (minimum %d characters): ", auth.MinPasswordLen))
	if err := auth.ValidatePassword(password); err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	name := utils.Prompt("Name (optional): ")

	if !utils.Confirm(fmt.Sprintf("Create admin %s?", email)) {
		fmt.Println("Cancelled")
		return
	}

	fmt.Println("\nRegistering account with the identity service...")
	user, err := auth.CreateUser(globals.Ctx, conn.AuthUsers, email, password, name)
	if errors.Is(err, auth.ErrEmailTaken) {
		fmt.Printf("[ERR] %s is already registered\n", email)
		fmt.Println("\nHint: to promote an existing user, run promote-admin instead.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("[ERR] creating user: %v", err)
	}
	fmt.Println("[OK] User created with UID:", user.UID)

	res, err := db.Upsert(globals.Ctx, conn.Admins,
		db.Key{Field: "uid", Value: user.UID},
		bson.M{"active": true, "email": user.Email, "name": name},
		db.MergeExisting)
	if err != nil {
		log.Fatalf("[ERR] writing admin record: %v", err)
	}
	rdx.InvalidateAdmin(user.Email)

	token, err := auth.CustomToken(id, user.UID)
	if err != nil {
		log.Printf("[WARN] could not mint first-login token: %v", err)
	}

	fmt.Println()
	utils.Banner()
	fmt.Println("[OK] Summary:")
	fmt.Println("  UID:   ", user.UID)
	fmt.Println("  Email: ", user.Email)
	fmt.Println("  Name:  ", utils.OrNA(name))
	fmt.Printf("  Status: active (%s)\n", res.Outcome)
	if token != "" {
		fmt.Println("  First-login token:", utils.Preview(token, 24))
	}
	fmt.Println("\nThe user can now access the admin area.")
}
