// Package humanise turns codec errors into messages for end users.
package humanise

//go:generate go run ../internal/gen
