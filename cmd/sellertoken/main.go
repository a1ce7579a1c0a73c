package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"lowkey/config"
	"lowkey/internal/infra/auth"
)

// Prints a seller bearer token signed with secretKey.access, for local use.
func main() {
	seller := flag.String("seller", "", "seller ID to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := run(*seller, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(seller string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateSellerToken(seller, ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)

	return nil
}
