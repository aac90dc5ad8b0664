// Interactive variant of create-admin-quick: prompts for username, email
// domain, password and name, then writes both the uid-keyed admin record and
// the username mapping.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"salone/admin"
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

	fmt.Println("\nCreate admin user with username login")
	utils.Banner()

	username := utils.Prompt("Username (without @): ")
	if username == "" {
		log.Fatal("[ERR] username is required")
	}
	domain := utils.Prompt(fmt.Sprintf("Email domain (default: %s): ", globals.EmailDomain))

	password := utils.Prompt(fmt.Sprintf("Password (minimum %d characters): ", auth.MinPasswordLen))
	if err := auth.ValidatePassword(password); err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	name := utils.Prompt("Full name (optional): ")

	res, err := admin.CreateQuick(globals.Ctx, conn.AuthUsers, conn.Admins, conn.AdminUsers, username, domain, password, name)
	if errors.Is(err, auth.ErrEmailTaken) {
		fmt.Println("[ERR] that email is already registered")
		fmt.Println("\nHint: to promote an existing user, run promote-admin instead.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	fmt.Println("[OK] User created with UID:", res.Account.UID)
	fmt.Println("[OK] Admin record written")
	fmt.Println("[OK] Username mapping written (record key = username)")

	rdx.InvalidateAdmin(res.Link.Username)

	fmt.Println()
	utils.Banner()
	fmt.Println("[OK] Summary:")
	fmt.Println("  UID:     ", res.Account.UID)
	fmt.Println("  Username:", res.Account.Username)
	fmt.Println("  Email:   ", res.Account.Email)
	fmt.Println("  Name:    ", utils.OrNA(res.Account.Name))
	fmt.Println("\nThe user can now log in with username and password.")
}
