// Non-interactive admin creation.
//
// Usage: create-admin-quick <username> <password> [name]
//
// The login email is derived as <username>@salone.local; a username mapping
// record is written alongside the uid-keyed admin record.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"salone/admin"
	"salone/auth"
	"salone/credentials"
	"salone/db"
	"salone/globals"
	"salone/rdx"
	"salone/utils"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: create-admin-quick <username> <password> [name]")
		fmt.Println("Example: create-admin-quick admin password123 \"Admin User\"")
		os.Exit(1)
	}
	username := strings.ToLower(strings.TrimSpace(os.Args[1]))
	// The password is taken verbatim; leading or trailing whitespace is part
	// of it, as with the interactive tools.
	password := os.Args[2]
	name := ""
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	if username == "" {
		log.Fatal("[ERR] username is required")
	}
	if err := auth.ValidatePassword(password); err != nil {
		log.Fatalf("[ERR] %v", err)
	}

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

	fmt.Println("\nCreating admin user...")
	fmt.Println("  Username:", username)
	fmt.Println("  Email:   ", username+"@"+globals.EmailDomain)

	res, err := admin.CreateQuick(globals.Ctx, conn.AuthUsers, conn.Admins, conn.AdminUsers, username, "", password, name)
	if errors.Is(err, auth.ErrEmailTaken) {
		fmt.Printf("[ERR] %s@%s is already registered\n", username, globals.EmailDomain)
		fmt.Println("\nHint: to promote an existing user, run promote-admin instead.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	fmt.Println("[OK] User created with UID:", res.Account.UID)
	fmt.Println("[OK] Admin record written")
	fmt.Println("[OK] Username mapping written")

	rdx.InvalidateAdmin(res.Link.Username)

	fmt.Println()
	utils.Banner()
	fmt.Println("[OK] Admin created")
	fmt.Println("  Username:", res.Account.Username)
	fmt.Println("  Email:   ", res.Account.Email)
	fmt.Println("  Name:    ", utils.OrNA(res.Account.Name))
	fmt.Println("\nThe user can now log in to the admin area.")
}
