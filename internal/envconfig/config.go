// Package envconfig reads the TFGRAPH_* environment variables.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel returns the log level for the application.
// Values are 0 or false INFO (Default), 1 or true DEBUG, 2 TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TFGRAPH_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// NameCollision returns the policy for operation names which are already
// taken in a graph: "suffix" (default) or "fail".
func NameCollision() string {
	if s := strings.ToLower(Var("TFGRAPH_NAME_COLLISION")); s != "" {
		return s
	}
	return "suffix"
}

// GraphDefProducer returns the producer version written into GraphDefs.
var GraphDefProducer = Uint("TFGRAPH_GRAPHDEF_PRODUCER", 1882)

// Var returns an environment variable stripped of leading and trailing
// quotes or spaces
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Uint returns a function reading an unsigned integer variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 32); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns all configuration variables with their current values.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TFGRAPH_DEBUG":             {"TFGRAPH_DEBUG", LogLevel(), "Show additional debug information (e.g. TFGRAPH_DEBUG=1)"},
		"TFGRAPH_NAME_COLLISION":    {"TFGRAPH_NAME_COLLISION", NameCollision(), "Policy for taken operation names: suffix or fail (default: suffix)"},
		"TFGRAPH_GRAPHDEF_PRODUCER": {"TFGRAPH_GRAPHDEF_PRODUCER", GraphDefProducer(), "Producer version written into GraphDefs (default: 1882)"},
	}
}

// Values returns the configuration values as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
