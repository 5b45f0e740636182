// hashpw prints the bcrypt hash of a password for seeding staff accounts.
package main

import (
	"fmt"
	"os"

	"hotelier/internal/pkg/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := password.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
