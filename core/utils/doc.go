// Package utils provides common helpers for working with loosely typed
// provider data, chiefly nullable string access on decoded JSON objects.
package utils
