package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/testutil"
)

func TestMain(m *testing.M) {
	keyring.MockInit()
	os.Exit(m.Run())
}

// run executes gogsctl against srv with an empty config file.
func run(t *testing.T, srv *testutil.Server, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "gogsctl.yml")
	if err := os.WriteFile(cfgFile, []byte("logging:\n  level: error\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgFile, "--url", srv.URL()}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestUsersGet(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodGet, "users/test", "user.json")

	out, _, err := run(t, srv, "", "users", "get", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"id": 7`) || !strings.Contains(out, `"username": "test"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestUsersSearch_YAML(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodGet, "users/search?q=temp&limit=3", "usersDataWrapper.json")

	out, _, err := run(t, srv, "", "users", "search", "temp", "--limit", "3", "-o", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"- id: 9075", "username: gogstemp215", "- id: 10236"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTokenFlag(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodGet, "orgs/gogs/teams", "teams.json")

	out, _, err := run(t, srv, "", "--token", "abc", "orgs", "teams", "gogs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name": "reviewers"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if tok := srv.LastRequest(t).Token; tok != "abc" {
		t.Errorf("token = %q", tok)
	}
}

func TestUserFlagReadsPassword(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodGet, "users/test/tokens", "tokens.json")

	if _, _, err := run(t, srv, "pass\n", "--user", "test", "users", "tokens", "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth := srv.LastRequest(t).Header.Get("Authorization"); auth != "Basic dGVzdDpwYXNz" {
		t.Errorf("authorization = %q", auth)
	}
}

func TestAdminMembers(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetStatus(http.MethodPut, "admin/teams/3/members/alice", http.StatusNoContent)

	if _, _, err := run(t, srv, "", "--token", "admin", "admin", "add-member", "3", "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m := srv.LastRequest(t).Method; m != http.MethodPut {
		t.Errorf("method = %s", m)
	}

	_, _, err := run(t, srv, "", "--token", "admin", "admin", "remove-member", "three", "alice")
	if !errors.IsInvalidArgument(err) {
		t.Errorf("expected invalid argument, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Errorf("exit code = %d", exitCode(err))
	}
}

func TestAdminCreateTeamConflict(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetError(http.MethodPost, "admin/orgs/gogs/teams", http.StatusUnprocessableEntity, "")

	_, _, err := run(t, srv, "", "--token", "admin", "admin", "create-team", "gogs", "reviewers", "--permission", "write")
	if !errors.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
	body := decodeJSON(t, srv.LastRequest(t).Body)
	if body["name"] != "reviewers" || body["permission"] != "write" {
		t.Errorf("body = %v", body)
	}
}

func TestAdminEditUser_OnlyGivenFlags(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodPut, "admin/users/test", "user.json")

	_, _, err := run(t, srv, "", "--token", "admin", "admin", "edit-user", "test", "--active=false", "--max-repo-creation", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeJSON(t, srv.LastRequest(t).Body)
	if body["active"] != false || body["max_repo_creation"] != float64(5) {
		t.Errorf("body = %v", body)
	}
	if v, ok := body["admin"]; !ok || v != nil {
		t.Errorf("admin should be sent as null, got %v", v)
	}
}

func TestOrgsEdit(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetFixture(t, http.MethodPatch, "orgs/gogs", "organization.json")

	if _, _, err := run(t, srv, "", "--token", "owner", "orgs", "edit", "gogs", "--description", "Go Git Service"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeJSON(t, srv.LastRequest(t).Body)
	if body["description"] != "Go Git Service" {
		t.Errorf("body = %v", body)
	}
}

func TestNotFound(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetError(http.MethodGet, "orgs/ghost", http.StatusNotFound, "organization does not exist")

	_, _, err := run(t, srv, "", "orgs", "get", "ghost")
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if exitCode(err) != 4 {
		t.Errorf("exit code = %d", exitCode(err))
	}
}

func TestInvalidOutput(t *testing.T) {
	srv := testutil.NewServer(t)
	_, _, err := run(t, srv, "", "-o", "xml", "user", "orgs")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("expected no request, got %d", n)
	}
}

func TestLoginLogout(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.SetResponse(http.MethodPost, "users/test/tokens", testutil.Response{
		Status:      http.StatusCreated,
		ContentType: "application/json",
		Body:        `{"name":"gogsctl","sha1":"8a3f1c2b9d4e7f6a5b0c1d2e3f4a5b6c7d8e9f0a"}`,
	})
	srv.SetFixture(t, http.MethodGet, "user/orgs", "organizations.json")

	_, stderr, err := run(t, srv, "pass\n", "--user", "test", "login")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(stderr, "Logged in as test") {
		t.Errorf("stderr = %q", stderr)
	}
	login := srv.LastRequest(t)
	if login.Form().Get("name") != defaultTokenName {
		t.Errorf("token name = %q", login.Form().Get("name"))
	}
	stored, err := keyring.Get(credentials.DefaultKeyringService, "default")
	if err != nil || stored != "8a3f1c2b9d4e7f6a5b0c1d2e3f4a5b6c7d8e9f0a" {
		t.Fatalf("stored token = %q, err = %v", stored, err)
	}

	if _, _, err := run(t, srv, "", "user", "orgs"); err != nil {
		t.Fatalf("user orgs: %v", err)
	}
	if tok := srv.LastRequest(t).Token; tok != stored {
		t.Errorf("expected stored token to be used, got %q", tok)
	}

	if _, _, err := run(t, srv, "", "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := keyring.Get(credentials.DefaultKeyringService, "default"); err != keyring.ErrNotFound {
		t.Errorf("expected token to be removed, got %v", err)
	}
}

func TestLoginRequiresUser(t *testing.T) {
	srv := testutil.NewServer(t)
	_, _, err := run(t, srv, "", "login")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "gogsctl ") {
		t.Errorf("output = %q", out.String())
	}

	cmd = newRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "-o", "yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "version: ") {
		t.Errorf("output = %q", out.String())
	}
}
