// checkenv audits the deployment environment before a release:
// every key of the wire contract is checked and reported, required
// gaps flip the exit code.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var requiredVars = []string{
	"NEXT_PUBLIC_SUPABASE_URL",
	"NEXT_PUBLIC_SUPABASE_ANON_KEY",
	"SUPABASE_SERVICE_KEY",
	"EMAIL_HOST",
	"EMAIL_PORT",
	"EMAIL_USER",
	"EMAIL_PASS",
}

var optionalVars = []string{
	"NEXT_PUBLIC_WHATSAPP_PHONE",
	"NEXT_PUBLIC_GA_ID",
	"NODE_ENV",
	"ADMIN_EMAIL",
	"ADMIN_PASSWORD_HASH",
	"JWT_SECRET",
	"ON_PERSISTENCE_FAILURE",
}

func main() {
	fmt.Println("🔍 Auditing environment configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️  No .env file found, checking system env vars...")
	}

	hasErrors := false

	fmt.Println("\nRequired:")
	for _, key := range requiredVars {
		if os.Getenv(key) == "" {
			fmt.Printf("❌ FAIL: %s is not set\n", key)
			hasErrors = true
			continue
		}
		fmt.Printf("✅ PASS: %s\n", key)
	}

	fmt.Println("\nOptional:")
	for _, key := range optionalVars {
		if os.Getenv(key) == "" {
			fmt.Printf("⚠️  SKIP: %s not set\n", key)
			continue
		}
		fmt.Printf("✅ PASS: %s\n", key)
	}

	if hasErrors {
		fmt.Println("\n❌ Environment is incomplete, refusing to deploy.")
		os.Exit(1)
	}
	fmt.Println("\n✅ Environment is ready.")
}
