package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func parseEnv[T any](envVarName, envValue string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("Environment variable %s is not valid: '%s' is not an integer", envVarName, envValue))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("Environment variable %s is not valid: '%s' is not a boolean", envVarName, envValue))
		}
		*ptr = boolValue
	default:
		panic(fmt.Sprintf("Unsupported type for environment variable %s", envVarName))
	}
	return out
}

func GetEnv[T any](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVarName, envValue)
}

func GetRequiredEnv[T any](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	return parseEnv[T](envVarName, envValue)
}
