package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetBytes marshals the given value, mostly used to build mocked response bodies
func GetBytes(v interface{}) []byte {
	b, _ := json.Marshal(v)
	return b
}

// IsSuccess returns if the status code belongs to the 2xx family
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
