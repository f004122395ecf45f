package utils

import "strings"

// Returns if a slice of string contains an string
func StringContains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims every element, dropping the empty ones
func Normalize(s []string) []string {
	res := make([]string, 0, len(s))
	for _, a := range s {
		if n := strings.ToLower(strings.TrimSpace(a)); n != "" {
			res = append(res, n)
		}
	}
	return res
}
