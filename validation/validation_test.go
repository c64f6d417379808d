package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/gogskit/errors"
)

func TestValidatorRequired(t *testing.T) {
	for _, value := range []string{"", "   ", "\t"} {
		v := New().Required("username", value)
		if !v.HasErrors() {
			t.Errorf("expected error for %q", value)
		}
	}
	if New().Required("username", "test").HasErrors() {
		t.Error("expected no error for non-empty value")
	}
}

func TestValidatorChecks(t *testing.T) {
	v := New().
		MaxLength("name", "abcdef", 3).
		Positive("team_id", 0).
		Name("username", "a/b").
		Name("org", "")
	if len(v.Errors()) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(v.Errors()), v.Errors())
	}
	if msg := v.Errors()[2].Message; msg != nameMessage {
		t.Errorf("unexpected name message %q", msg)
	}

	ok := New().
		MaxLength("name", "äbc", 3).
		Positive("team_id", 4).
		Name("username", "gogs_user-1.2")
	if ok.HasErrors() {
		t.Errorf("expected no errors, got %v", ok.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := New().Required("username", "").Positive("team_id", -1).Validate()
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if !strings.Contains(err.Error(), "username: is required") || !strings.Contains(err.Error(), "team_id") {
		t.Errorf("unexpected message %q", err.Error())
	}
	var fe FieldErrors
	if !stderrors.As(err, &fe) || len(fe) != 2 {
		t.Errorf("expected FieldErrors cause with 2 entries, got %v", fe)
	}
}

func TestNameFunc(t *testing.T) {
	if err := Name("org", "gogs"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	for _, bad := range []string{" ", "gogs/admin", "a b", "team?x=1"} {
		if err := Name("org", bad); !errors.IsInvalidArgument(err) {
			t.Errorf("%q: expected invalid argument, got %v", bad, err)
		}
	}
}

type teamOption struct {
	Name        string `json:"name" validate:"required,max=30,gogs_name"`
	Description string `json:"description" validate:"max=255"`
	Permission  string `json:"permission" validate:"omitempty,oneof=read write admin"`
	MaxRepos    *int   `json:"max_repo_creation" validate:"omitempty,gte=-1"`
	Email       string `validate:"omitempty,email"`
}

func TestStructValidateValid(t *testing.T) {
	n := -1
	if err := Validate(teamOption{Name: "owners-2", Permission: "admin", MaxRepos: &n}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	n := -2
	err := Validate(teamOption{
		Name:        "bad name!",
		Description: strings.Repeat("x", 256),
		Permission:  "root",
		MaxRepos:    &n,
		Email:       "nope",
	})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	var fe FieldErrors
	if !stderrors.As(err, &fe) {
		t.Fatalf("expected FieldErrors cause, got %v", err)
	}
	fields := map[string]string{}
	for _, e := range fe {
		fields[e.Field] = e.Message
	}
	want := map[string]string{
		"name":              "may only contain letters, digits, dash, underscore and dot",
		"description":       "must be at most 255 characters",
		"permission":        "must be one of: read write admin",
		"max_repo_creation": "must be at least -1",
		"email":             "must be a valid email address",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, fields[field])
		}
	}
}

func TestStructValidateRequired(t *testing.T) {
	err := Validate(teamOption{})
	var fe FieldErrors
	if !stderrors.As(err, &fe) || len(fe) != 1 || fe[0].Field != "name" || fe[0].Message != "is required" {
		t.Errorf("unexpected errors %v", fe)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("MaxRepoCreation"); got != "max_repo_creation" {
		t.Errorf("unexpected %q", got)
	}
}
