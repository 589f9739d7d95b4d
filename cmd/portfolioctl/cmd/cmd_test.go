package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/database"
)

// run executes portfolioctl with a fixed configuration and returns its output.
func run(t *testing.T, c map[string]string, args ...string) (string, error) {
	t.Helper()
	cfg = c
	t.Cleanup(func() { cfg = nil })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testConfig(t *testing.T) map[string]string {
	t.Helper()
	dir := t.TempDir()
	return map[string]string{
		"DB_TYPE":       "sqlite",
		"SQLITE_PATH":   filepath.Join(dir, "portfolio.db"),
		"MEDIA_BACKEND": "local",
		"MEDIA_DIR":     filepath.Join(dir, "media"),
	}
}

func TestMigrateCommand(t *testing.T) {
	out, err := run(t, testConfig(t), "migrate")
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "Database schema is up to date.") {
		t.Errorf("output = %q", out)
	}
}

func TestSeedCommand(t *testing.T) {
	c := testConfig(t)

	out, err := run(t, c, "seed", "--mode", "reset", "--no-images")
	if err != nil {
		t.Fatalf("seed reset: %v", err)
	}
	if !strings.Contains(out, "Added 6 sample projects successfully!") {
		t.Errorf("reset output = %q", out)
	}

	if _, err := run(t, c, "seed", "--mode", "upsert", "--no-images"); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}

	gdb, err := database.Open(c)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db := database.New(gdb)
	defer db.Close()
	n, err := db.ProjectRepo().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 8 {
		t.Errorf("projects after reset and upsert = %d, want 8", n)
	}
}

func TestSeedCommandRejectsUnknownMode(t *testing.T) {
	_, err := run(t, testConfig(t), "seed", "--mode", "wipe", "--no-images")
	if err == nil || !strings.Contains(err.Error(), `invalid --mode "wipe"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestImagesCommands(t *testing.T) {
	c := testConfig(t)

	out, err := run(t, c, "images", "placeholders")
	if err != nil {
		t.Fatalf("placeholders: %v", err)
	}
	if !strings.Contains(out, "All placeholder images created successfully!") {
		t.Errorf("placeholders output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(c["MEDIA_DIR"], "profile.jpg")); err != nil {
		t.Errorf("profile.jpg not written: %v", err)
	}

	out, err = run(t, c, "images", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "profile.jpg") {
		t.Errorf("list output = %q", out)
	}

	if _, err := run(t, c, "images", "replace", "profile.jpg"); err == nil {
		t.Error("replace with one argument accepted")
	}
}

func TestImagesInteractiveExits(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("3\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, err := run(t, testConfig(t), "images", "interactive")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "Interactive Image Replacement") {
		t.Errorf("output = %q", out)
	}
}
