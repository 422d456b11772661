package main

import (
	"fmt"
	"os"

	"github.com/darlculus/franciscancatholicschool-sub001/app/routes/auth"
)

// Prints the bcrypt hash of a password for the BURSAR_PASSWORD_HASH
// environment variable.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: hash_password <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
