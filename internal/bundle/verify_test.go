package bundle

import (
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

func TestVerifyCompleteBundle(t *testing.T) {
	target := platform.Darwin
	m := testManifest()
	inst := fakeInstallation(t, target, nil, nil)
	bundleDir := filepath.Join(t.TempDir(), "App.app")

	if _, err := BuildPlan(m, inst, target, bundleDir).Execute(io.Discard); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	res := DestTree(m, target, bundleDir).Verify(io.Discard)
	if !res.OK() {
		t.Errorf("complete bundle should verify: %+v", res)
	}
	if res.Present != 7 {
		t.Errorf("Present = %d, want 7", res.Present)
	}
}

func TestVerifyMissingMandatory(t *testing.T) {
	target := platform.Linux
	m := testManifest()
	bundleDir := t.TempDir() // empty tree

	var out strings.Builder
	res := DestTree(m, target, bundleDir).Verify(&out)

	if res.OK() {
		t.Error("empty bundle should not verify")
	}
	// Executable plus two mandatory trained-data files.
	if res.MissingRequired != 3 {
		t.Errorf("MissingRequired = %d, want 3", res.MissingRequired)
	}
	if res.MissingOptional != 4 {
		t.Errorf("MissingOptional = %d, want 4", res.MissingOptional)
	}
	if !strings.Contains(out.String(), "[MISS]") {
		t.Errorf("output should flag missing artifacts:\n%s", out.String())
	}
}

func TestVerifyMissingOptionalStillOK(t *testing.T) {
	target := platform.Darwin
	m := testManifest()
	inst := fakeInstallation(t, target, nil, map[string]bool{"libtiff": true})
	bundleDir := filepath.Join(t.TempDir(), "App.app")

	if _, err := BuildPlan(m, inst, target, bundleDir).Execute(io.Discard); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	res := DestTree(m, target, bundleDir).Verify(io.Discard)
	if !res.OK() {
		t.Errorf("bundle without an optional library should still verify: %+v", res)
	}
	if res.MissingOptional != 1 {
		t.Errorf("MissingOptional = %d, want 1", res.MissingOptional)
	}
}

func TestVerifyFlagsNonExecutableBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not expressed on Windows")
	}

	target := platform.Linux
	m := testManifest()
	m.Libraries = nil
	bundleDir := t.TempDir()

	plan := DestTree(m, target, bundleDir)
	for _, a := range plan.Artifacts {
		writeFakeFile(t, a.Dest, a.Name) // 0644, no exec bit
	}

	res := plan.Verify(io.Discard)
	if res.OK() {
		t.Error("bundle with non-executable binary should not verify")
	}
	if !res.NotExecutable {
		t.Error("NotExecutable should be set")
	}
}
