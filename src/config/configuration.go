package config

import (
	"os"
	"strconv"
)

func GetenvStr(key string) string {
	return os.Getenv(key)
}

// GetenvOr returns the environment variable, or the fallback when it
// is unset or empty.
func GetenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetenvInt(key string) (*int, error) {
	s := GetenvStr(key)
	if s == "" {
		var i int
		return &i, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		var i int
		return &i, err
	}
	return &v, nil
}

func GetenvInt64(key string) (int64, error) {
	s := GetenvStr(key)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func GetenvBool(key string) (*bool, error) {
	s := GetenvStr(key)
	if s == "" {
		b := false
		return &b, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		b := false
		return &b, err
	}
	return &v, nil
}
