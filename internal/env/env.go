// Package env provides shared environment lookup helpers.
package env

import (
	"os"
	"strconv"
)

// Get returns the value of the environment variable named by key, or
// fallback if the variable is not set.
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetInt returns the environment variable named by key parsed as an int,
// or fallback if the variable is unset or not a valid integer.
func GetInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
