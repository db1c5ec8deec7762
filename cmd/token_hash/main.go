// Package main prints the bcrypt hash of an API token, to be set as GYMTRACKER_API_TOKEN_HASH.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/2beens/gymtracker/pkg"
)

func main() {
	token := flag.String("token", "", "api token to hash")
	flag.Parse()

	if *token == "" {
		fmt.Fprintln(os.Stderr, "token must be set, use -token")
		os.Exit(1)
	}

	hash, err := pkg.HashPassword(*token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash token: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
