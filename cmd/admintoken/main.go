// Command admintoken prints a new operator token and the bcrypt hash to put
// in ADMIN_TOKEN_HASH. Pass an existing token as the only argument to hash it
// instead of generating one.
package main

import (
	"fmt"
	"os"

	"onboarding/pkg/platform/secrets"
)

func main() {
	token, err := tokenFromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	hash, err := secrets.Hash(token)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("token: %s\nADMIN_TOKEN_HASH=%s\n", token, hash)
}

func tokenFromArgs(args []string) (string, error) {
	switch len(args) {
	case 0:
		return secrets.Generate()
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("usage: admintoken [token]")
	}
}
