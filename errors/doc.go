// Package errors defines the error taxonomy returned by the Gogs client.
//
// Every failure surfaces as a *Error carrying a Code. Codes form a small
// hierarchy: request failures include every response failure, and response
// failures include the Unauthorized, NotFound and AlreadyExists
// specialisations. Use the Is* predicates or errors.Is with the exported
// sentinels instead of comparing codes directly.
package errors
