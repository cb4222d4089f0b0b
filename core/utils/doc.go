// Package utils provides common utility functions for the dashboard server.
// It includes type conversion helpers for loosely typed JSON input and a
// goroutine-safe random source shared by the simulated upstream systems.
package utils
