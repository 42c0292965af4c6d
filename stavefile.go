//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binName = "parsekit"
	binPath = "bin/" + binName
	mainPkg = "./cmd/" + binName
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"d":   Docs,
	"s":   Smoke,
	"fmt": Lint.Fmt,
	"bm":  Bench.Default,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// releasePlatforms are the GOOS/GOARCH pairs parsekit is released for.
var releasePlatforms = []string{
	"linux/amd64", "linux/arm64",
	"darwin/amd64", "darwin/arm64",
	"windows/amd64", "windows/arm64",
	"freebsd/amd64",
}

// ---------------------------------------------------------------------------
// Top-level targets
// ---------------------------------------------------------------------------

// Build compiles the parsekit binary with version info, skipping the build
// when no source changed.
func Build() error {
	rebuild, err := target.Dir(binPath, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binPath, "is up to date")
		return nil
	}
	fmt.Println("Building", binName+"...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, mainPkg)
}

// Check runs format, lint, tests, the smoke run and the documentation
// examples in order.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Smoke, Docs)
}

// Docs verifies the grammar examples embedded in the Markdown documentation.
func Docs() error {
	st.Deps(Build)
	fmt.Println("Checking documentation examples...")
	return sh.RunV(binPath, "check", "--color", "never", ".")
}

// Smoke runs the built binary end to end: the demo must succeed, a valid
// input must be accepted and an invalid one must exit with status 1.
func Smoke() error {
	st.Deps(Build)
	fmt.Println("Running smoke checks...")

	if err := sh.RunV(binPath, "demo", "--color", "never"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := sh.RunV(binPath, "parse", "-g", "int-pair", " 00034 230 "); err != nil {
		return fmt.Errorf("parse valid input: %w", err)
	}

	var exitErr *exec.ExitError
	err := exec.Command(binPath, "parse", "12abc").Run() //nolint:gosec // args are constant
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		return fmt.Errorf("parse invalid input: want exit status 1, got %v", err)
	}

	fmt.Println("✓ Smoke checks passed")
	return nil
}

// Clean removes build and profiling artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "coverage.out", "coverage.html", "cpu.out", "mem.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs parsekit to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing", binName+"...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Uninstall removes parsekit from $GOBIN or $GOPATH/bin.
func Uninstall() error {
	installed, err := findInstalledBinary(binName)
	if err != nil {
		return err
	}
	if err := os.Remove(installed); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println(binName, "is not installed")
			return nil
		}
		return fmt.Errorf("remove binary: %w", err)
	}
	fmt.Println("Removed", installed)
	return nil
}

// Deps downloads and tidies module dependencies.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage writes an HTML coverage report from the default test run.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// ---------------------------------------------------------------------------
// Test namespace
// ---------------------------------------------------------------------------

// Default runs all tests with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "./...", "-race", "-coverprofile=coverage.out", "-covermode=atomic")
}

// Verbose runs all tests with per-test output.
func (Test) Verbose() error {
	return gotestsum("standard-verbose", "./...", "-race")
}

// Core runs the combinator engine tests repeatedly to shake out
// order-dependent property failures.
func (Test) Core() error {
	return gotestsum("testname", "./pkg/parse/...", "-count=5", "-shuffle=on")
}

// ---------------------------------------------------------------------------
// Lint namespace
// ---------------------------------------------------------------------------

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without modifying files.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any Go file is not gofmt-clean.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out = strings.TrimSpace(out); out != "" {
		return fmt.Errorf("unformatted files (run 'stave fmt'):\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// ---------------------------------------------------------------------------
// CI namespace
// ---------------------------------------------------------------------------

// Gate runs every check a pull request must pass.
func (CI) Gate() {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Test.Default,
		Smoke,
		Docs,
		CI.ModTidy,
		CI.Cross,
	)
}

// ModTidy fails when 'go mod tidy' would change go.mod or go.sum.
func (CI) ModTidy() error {
	files := []string{"go.mod", "go.sum"}

	before := make(map[string][]byte, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", name, err)
		}
		before[name] = data
	}

	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}

	for _, name := range files {
		after, err := os.ReadFile(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if !bytes.Equal(before[name], after) {
			return fmt.Errorf("%s is not tidy; commit the result of 'go mod tidy'", name)
		}
	}
	return nil
}

// Cross builds the binary for every release platform with cgo disabled.
func (CI) Cross() error {
	for _, platform := range releasePlatforms {
		goos, goarch, _ := strings.Cut(platform, "/")
		fmt.Println("  building", platform)
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Bench namespace
// ---------------------------------------------------------------------------

// Default runs the parser and runner benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/...")
}

// Profile benchmarks the combinator engine and writes CPU and memory
// profiles for 'go tool pprof'.
func (Bench) Profile() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem",
		"-cpuprofile=cpu.out", "-memprofile=mem.out", "./pkg/parse")
}

// ---------------------------------------------------------------------------
// Helpers (unexported, not targets)
// ---------------------------------------------------------------------------

// gotestsum runs go test for pkgs through gotestsum with the given output
// format and extra go test flags.
func gotestsum(format, pkgs string, flags ...string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	args := []string{"tool", "gotestsum", "-f", format, "--", "-p", nCores, "-parallel", nCores, pkgs}
	return sh.RunV("go", append(args, flags...)...)
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

// findInstalledBinary returns the path where go install places name.
func findInstalledBinary(name string) (string, error) {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return filepath.Join(gobin, name), nil
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "bin", name), nil
}
