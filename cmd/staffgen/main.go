package main

import (
	"fmt"
	"log"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main produces a STAFF_ACCOUNTS entry for one staff account
// Usage: go run cmd/staffgen/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VERVE STOREFRONT - Staff Account Generator")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	email, password, name, role := getStaffCredentials()

	// Hash password
	authService := services.GetStaffAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Staff Entry Generated!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Append this entry to STAFF_ACCOUNTS (entries separated by ';'):")
	fmt.Println()
	fmt.Printf("%s|%s|%s|%s\n", email, name, role, passwordHash)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Add the entry to STAFF_ACCOUNTS in your .env")
	fmt.Println("2. Restart the server: go run main.go")
	fmt.Println("3. Login at POST /api/v1/admin/login with email and password")
	fmt.Println()
}

// getStaffCredentials prompts for staff account details
func getStaffCredentials() (email, password, name, role string) {
	fmt.Println("Enter Staff Account Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Role
	for {
		fmt.Print("Role (editor/manager/admin): ")
		fmt.Scanln(&role)
		if models.IsRecognizedRole(role) {
			break
		}
		fmt.Println("❌ Role must be editor, manager or admin")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetStaffAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name, role
}
