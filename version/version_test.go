package version

import (
	"strings"
	"testing"
	"unicode"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetVersionInfoDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetVersionInfoFromLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234def"
	BuildTime = "2024-01-15T10:30:00Z"

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("expected release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected truncated commit, got %q", info.GitCommit)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("unexpected build date %v", info.BuildDate)
	}
	if !strings.Contains(info.String(), "gogsctl 1.2.0 (abc1234") {
		t.Errorf("unexpected string %q", info.String())
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"

	v := GetShortVersion()
	if !strings.HasPrefix(v, "1.2.0-abc1234") {
		t.Errorf("unexpected short version %q", v)
	}
	if strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		t.Errorf("short version must not contain whitespace: %q", v)
	}
}
