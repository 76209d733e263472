// Package dotenv seeds the process environment from a .env file before the
// config layer reads it.
package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the environment and lets a -port flag override the
// PORT variable for local runs.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	port := flag.String("port", "", "server port, overrides PORT from the environment")
	flag.Parse()

	if *port != "" {
		if err := os.Setenv("PORT", *port); err != nil {
			return fmt.Errorf("override PORT: %w", err)
		}
	}
	return nil
}
