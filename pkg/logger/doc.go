// Package logger constructs the process-wide structured logger.
package logger
