// Package utils provides small shared helpers.
//
// StripDiacritics normalizes text destined for object tags: the store keeps
// tag values in plain ASCII-friendly form, so combining marks are removed
// before upload. Retrieval returns the stripped form, never the original.
package utils
