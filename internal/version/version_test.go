package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if String() != Version {
		t.Errorf("String() = %q, want %q", String(), Version)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	Version = " 1.2.3 "
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q, want %q", got, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
}

func TestVersion_EmptyFallsBackToDev(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "   "
	if got := String(); got != "dev" {
		t.Errorf("String() = %q, want dev", got)
	}
}

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0", "0.1.0"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestColoredPaintsComponents(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = false

	Version = "2.4.6"
	got := Colored()
	if got == "2.4.6" {
		t.Fatalf("expected escape sequences in %q", got)
	}
	want := majorColor.Sprint("2") + "." + minorColor.Sprint("4") + "." + patchColor.Sprint("6")
	if got != want {
		t.Errorf("Colored() = %q, want %q", got, want)
	}
}

func BenchmarkColored(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Colored()
	}
}
