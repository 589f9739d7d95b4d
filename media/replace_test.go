package media

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
)

func seedStore(t *testing.T, files map[string]string) *LocalStore {
	t.Helper()
	store := NewLocalStore(t.TempDir())
	for name, body := range files {
		if err := store.Put(context.Background(), name, strings.NewReader(body)); err != nil {
			t.Fatalf("Put(%s) error = %v", name, err)
		}
	}
	return store
}

func readObject(t *testing.T, store Store, name string) string {
	t.Helper()
	rc, err := store.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", name, err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	return string(data)
}

func writeTempFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "new.jpg")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReplace_KeepsBackup(t *testing.T) {
	store := seedStore(t, map[string]string{"profile.jpg": "old"})
	newPath := writeTempFile(t, "new")
	var out bytes.Buffer

	if err := Replace(context.Background(), store, "profile.jpg", newPath, &out); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if got := readObject(t, store, "profile.jpg"); got != "new" {
		t.Errorf("profile.jpg = %q, want new", got)
	}
	if got := readObject(t, store, "backups/backup_profile.jpg"); got != "old" {
		t.Errorf("backup = %q, want old", got)
	}
	if !strings.Contains(out.String(), "Created backup: backups/backup_profile.jpg") ||
		!strings.Contains(out.String(), "Successfully replaced profile.jpg with "+newPath) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestReplace_MissingFiles(t *testing.T) {
	store := seedStore(t, map[string]string{"profile.jpg": "old"})

	var out bytes.Buffer
	err := Replace(context.Background(), store, "profile.jpg", "/no/such/file.jpg", &out)
	if !errs.IsFileMissingError(err) {
		t.Errorf("Replace() error = %v, want file missing", err)
	}
	if !strings.Contains(out.String(), "Error: New image file '/no/such/file.jpg' not found!") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	err = Replace(context.Background(), store, "missing.jpg", writeTempFile(t, "x"), &out)
	if !errs.IsFileMissingError(err) {
		t.Errorf("Replace() error = %v, want file missing", err)
	}
	if !strings.Contains(out.String(), "Error: Target file 'missing.jpg' not found!") {
		t.Errorf("output = %q", out.String())
	}
	if got := readObject(t, store, "profile.jpg"); got != "old" {
		t.Errorf("profile.jpg changed to %q", got)
	}
}

func TestImages_SkipsBackupsAndNested(t *testing.T) {
	store := seedStore(t, map[string]string{
		"profile.jpg":           "a",
		"notes.txt":             "b",
		"backups/backup_x.jpg":  "c",
		"projects/project1.jpg": "d",
		"hero-bg.jpg":           "e",
	})

	images, err := Images(context.Background(), store)
	if err != nil {
		t.Fatalf("Images() error = %v", err)
	}
	if len(images) != 2 || images[0].Name != "hero-bg.jpg" || images[1].Name != "profile.jpg" {
		t.Errorf("Images() = %+v", images)
	}
}

func TestList_PrintsSizesAndDescriptions(t *testing.T) {
	store := seedStore(t, map[string]string{"profile.jpg": strings.Repeat("x", 2048)})
	var out bytes.Buffer

	if err := List(context.Background(), store, &out); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !strings.Contains(out.String(), "profile.jpg") || !strings.Contains(out.String(), "(2.0 KB)") {
		t.Errorf("List() output missing size:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "(2.0 KB)  Your profile photo") {
		t.Errorf("List() output missing purpose of profile.jpg:\n%s", out.String())
	}
	if !strings.Contains(out.String(), Describe("favicon.jpg")) {
		t.Errorf("List() output missing descriptions:\n%s", out.String())
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("profile.jpg"); got != "Your profile photo (400x400px recommended)" {
		t.Errorf("Describe(profile.jpg) = %q", got)
	}
	if got := Describe("unknown.jpg"); got != "" {
		t.Errorf("Describe(unknown.jpg) = %q", got)
	}
}

func TestInteractive(t *testing.T) {
	newPath := writeTempFile(t, "fresh")

	tests := []struct {
		name     string
		input    string
		want     []string
		wantBody string
	}{
		{
			name:  "exit",
			input: "3\n",
			want:  []string{"Goodbye!"},
		},
		{
			name:  "invalid choice then list",
			input: "9\n1\n3\n",
			want:  []string{"Invalid choice! Please enter 1, 2, or 3.", "Current images:"},
		},
		{
			name:  "non numeric selection",
			input: "2\nabc\n3\n",
			want:  []string{"Please enter a valid number!"},
		},
		{
			name:  "out of range selection",
			input: "2\n7\n3\n",
			want:  []string{"Invalid selection!"},
		},
		{
			name:     "replace by number",
			input:    "2\n1\n" + newPath + "\n3\n",
			want:     []string{"1. profile.jpg", "Created backup: backups/backup_profile.jpg", "Goodbye!"},
			wantBody: "fresh",
		},
		{
			name:  "input ends",
			input: "1\n",
			want:  []string{"Current images:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedStore(t, map[string]string{"profile.jpg": "old"})
			var out bytes.Buffer

			if err := Interactive(context.Background(), store, strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("Interactive() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
			if tt.wantBody != "" {
				if got := readObject(t, store, "profile.jpg"); got != tt.wantBody {
					t.Errorf("profile.jpg = %q, want %q", got, tt.wantBody)
				}
			}
		})
	}
}
