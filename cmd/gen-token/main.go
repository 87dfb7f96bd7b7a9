// CLI tool to create an API token for /api/meal-plan and print the bcrypt
// hash to put in MACROMATE_API_TOKEN_HASH. The token itself is shown once.
// Usage: go run ./cmd/gen-token
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	token, hash, err := newToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Token created successfully!\n")
	fmt.Printf("  Auth Token: %s\n", token)
	fmt.Printf("\nAdd this line to your .env:\n")
	fmt.Printf("  MACROMATE_API_TOKEN_HASH=%s\n", hash)
}

// newToken returns a random token and its bcrypt hash.
func newToken() (token, hash string, err error) {
	token = uuid.New().String()
	h, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return token, string(h), nil
}
