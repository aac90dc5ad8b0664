// Diagnoses the environment configuration without opening a connection.
// Secrets are shown as truncated previews only. Informational; always exits 0.
package main

import (
	"fmt"
	"os"

	"salone/credentials"
	"salone/utils"
)

func main() {
	fmt.Println("Checking admin toolkit environment configuration")
	fmt.Println()
	credentials.LoadEnv()

	utils.Banner()
	fmt.Println("Required keys:")
	utils.Banner()

	projectID := os.Getenv(credentials.KeyProjectID)
	clientEmail := os.Getenv(credentials.KeyClientEmail)
	rawKey := os.Getenv(credentials.KeyPrivateKey)

	printPresence(credentials.KeyProjectID, projectID)
	printPresence(credentials.KeyClientEmail, clientEmail)

	switch {
	case rawKey == "":
		fmt.Printf("%s: [ERR] not set\n", credentials.KeyPrivateKey)
	case credentials.HasPEMDelimiters(credentials.ExpandNewlines(rawKey)):
		fmt.Printf("%s: [OK] present (%d chars)\n", credentials.KeyPrivateKey, len(rawKey))
		fmt.Println("  Preview:", utils.Preview(rawKey, 50))
	default:
		fmt.Printf("%s: [WARN] present but the format looks wrong\n", credentials.KeyPrivateKey)
		fmt.Println("  Preview:", utils.Preview(rawKey, 50))
		fmt.Println("  Expected -----BEGIN / -----END PEM markers")
	}

	fmt.Println("\nOptional keys:")
	printOptional(credentials.KeyPrivateKeyID, os.Getenv(credentials.KeyPrivateKeyID))
	printOptional(credentials.KeyClientID, os.Getenv(credentials.KeyClientID))

	fmt.Println()
	utils.Banner()
	if projectID != "" && clientEmail != "" && rawKey != "" {
		fmt.Println("[OK] All required keys are present.")
	} else {
		fmt.Println("[ERR] Some required keys are missing.")
		fmt.Println("Check the .env.local file in the project root.")
	}
}

func printPresence(key, value string) {
	if value == "" {
		fmt.Printf("%s: [ERR] not set\n", key)
		return
	}
	fmt.Printf("%s: [OK] %s\n", key, value)
}

func printOptional(key, value string) {
	if value == "" {
		fmt.Printf("%s: [SKIP] not set (optional)\n", key)
		return
	}
	fmt.Printf("%s: [OK] %s\n", key, utils.Preview(value, 12))
}
