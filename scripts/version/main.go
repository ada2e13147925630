// Command version bumps the growgroove version, commits it and tags the
// release.
//
//	go run ./scripts/version 0.2.0
package main

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/console"
	"github.com/charmbracelet/lipgloss"
)

const versionFile = "internal/constants.go"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var (
	semverPattern  = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)
	versionPattern = regexp.MustCompile(`(?m)^var Version = "[^"]*"$`)
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	version, err := normalizeVersion(os.Args[1])
	if err != nil {
		fail(err.Error())
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("This will update the version to %s", version)))
	fmt.Println("  1. Update " + versionFile)
	fmt.Println("  2. Commit the change")
	fmt.Println("  3. Create git tag " + version)
	fmt.Println("  4. Push to remote")
	fmt.Println()

	if ok, _ := console.Confirm("Continue?", false); !ok {
		fmt.Println(warningStyle.Render("Aborted"))
		return
	}

	if hasUncommittedChanges() {
		fail("You have uncommitted changes. Please commit or stash them first.")
	}

	src, err := os.ReadFile(versionFile)
	if err != nil {
		fail(fmt.Sprintf("Failed to read %s: %v", versionFile, err))
	}
	updated, err := bumpVersion(string(src), version)
	if err != nil {
		fail(err.Error())
	}
	if err := os.WriteFile(versionFile, []byte(updated), 0o644); err != nil {
		fail(fmt.Sprintf("Failed to write %s: %v", versionFile, err))
	}
	fmt.Println(successStyle.Render("✓ Updated " + versionFile))

	steps := []struct {
		name string
		args []string
	}{
		{"Committing changes", []string{"add", versionFile}},
		{"", []string{"commit", "-m", "chore: bump version to " + version}},
		{"Creating git tag", []string{"tag", "-a", version, "-m", "Release " + version}},
	}
	for _, s := range steps {
		if s.name != "" {
			fmt.Println(infoStyle.Render(s.name + "..."))
		}
		if err := git(s.args...); err != nil {
			fail(fmt.Sprintf("git %s failed: %v", s.args[0], err))
		}
	}

	fmt.Println()
	if ok, _ := console.Confirm("Push to remote?", false); !ok {
		fmt.Println(warningStyle.Render("Skipped push. Don't forget to push manually:"))
		fmt.Println("  git push origin HEAD")
		fmt.Printf("  git push origin %s\n", version)
		return
	}
	if err := git("push", "origin", "HEAD"); err != nil {
		fail(fmt.Sprintf("Failed to push commit: %v", err))
	}
	if err := git("push", "origin", version); err != nil {
		fail(fmt.Sprintf("Failed to push tag: %v", err))
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("🎉 Released %s", version)))
}

// normalizeVersion accepts 1.2.3 or v1.2.3 and returns the tag form.
func normalizeVersion(v string) (string, error) {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semverPattern.MatchString(v) {
		return "", fmt.Errorf("invalid version %q, use v1.0.0 or 1.0.0", v)
	}
	return v, nil
}

// bumpVersion rewrites the Version declaration in src. The file stores the
// version without the leading v.
func bumpVersion(src, tag string) (string, error) {
	if !versionPattern.MatchString(src) {
		return "", fmt.Errorf("no Version declaration in %s", versionFile)
	}
	return versionPattern.ReplaceAllString(src, fmt.Sprintf("var Version = %q", strings.TrimPrefix(tag, "v"))), nil
}

func hasUncommittedChanges() bool {
	out, err := exec.Command("git", "status", "--porcelain").Output()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

func git(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func fail(msg string) {
	fmt.Println(errorStyle.Render(msg))
	os.Exit(1)
}

func printUsage() {
	fmt.Println("Usage: go run ./scripts/version <version>")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  go run ./scripts/version 1.0.0")
	fmt.Println("  go run ./scripts/version v1.0.0")
}
