// Package entity converts between JSON payloads and typed Gogs entities.
//
// All decode failures are reported as parse errors from the errors package,
// wrapping the decoder's error. A nil payload is a parse error; an empty
// payload decodes to a nil result, which is how bodiless responses such as
// 204 No Content flow through the typed helpers.
package entity
