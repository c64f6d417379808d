// Package validation checks operation arguments and option structs before a
// request is sent. Failures are invalid-argument errors from the errors
// package whose cause is a FieldErrors value listing every failing field.
//
// Fluent checks for plain arguments:
//
//	if err := validation.New().Required("username", username).Validate(); err != nil {
//	    return nil, err
//	}
//
// Struct tags for option structs:
//
//	type CreateTeamOption struct {
//	    Name string `json:"name" validate:"required,max=30"`
//	}
//	err := validation.Validate(opt)
package validation
