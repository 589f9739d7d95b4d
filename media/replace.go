package media

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-site/errs"
)

// BackupPrefix is where Replace keeps the previous version of an image.
const BackupPrefix = "backups/"

var descriptions = []struct{ name, text string }{
	{"profile.jpg", "Your profile photo (400x400px recommended)"},
	{"hero-bg.jpg", "Hero section background (1200x600px recommended)"},
	{"about-me.jpg", "About page image (500x600px recommended)"},
	{"favicon.jpg", "Website favicon (64x64px)"},
	{"project1.jpg", "E-Commerce Website project image"},
	{"project2.jpg", "Task Manager App project image"},
	{"project3.jpg", "Weather Dashboard project image"},
	{"project4.jpg", "Blog Platform project image"},
	{"project5.jpg", "Portfolio Website project image"},
	{"project6.jpg", "Chat Application project image"},
}

// Describe returns what a known image is used for, or "".
func Describe(name string) string {
	for _, d := range descriptions {
		if d.name == name {
			return d.text
		}
	}
	return ""
}

// Images returns the top-level JPEGs in store; backups and nested media are skipped.
func Images(ctx context.Context, store Store) ([]Object, error) {
	all, err := store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	var images []Object
	for _, obj := range all {
		if strings.Contains(obj.Name, "/") || path.Ext(obj.Name) != ".jpg" {
			continue
		}
		images = append(images, obj)
	}
	return images, nil
}

// List prints the current images with their sizes and known purpose, then the
// description table.
func List(ctx context.Context, store Store, out io.Writer) error {
	images, err := Images(ctx, store)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Current images:")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	for _, img := range images {
		line := fmt.Sprintf("  %-20s (%.1f KB)", img.Name, float64(img.Size)/1024)
		if d := Describe(img.Name); d != "" {
			line += "  " + d
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, "\nImage descriptions:")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for _, d := range descriptions {
		fmt.Fprintf(out, "  %-15s - %s\n", d.name, d.text)
	}
	return nil
}

// Replace overwrites the stored image oldName with the local file at newPath,
// keeping the previous version under backups/backup_<oldName>.
func Replace(ctx context.Context, store Store, oldName, newPath string, out io.Writer) error {
	f, err := os.Open(newPath)
	if err != nil {
		fmt.Fprintf(out, "Error: New image file '%s' not found!\n", newPath)
		return errs.NewFileMissingError(newPath)
	}
	defer f.Close()

	exists, err := store.Exists(ctx, oldName)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(out, "Error: Target file '%s' not found!\n", oldName)
		return errs.NewFileMissingError(oldName)
	}

	backup := BackupPrefix + "backup_" + path.Base(oldName)
	if err := store.Copy(ctx, oldName, backup); err != nil {
		return fmt.Errorf("backup %s: %w", oldName, err)
	}
	fmt.Fprintf(out, "Created backup: %s\n", backup)

	if err := store.Put(ctx, oldName, f); err != nil {
		return fmt.Errorf("replace %s: %w", oldName, err)
	}
	fmt.Fprintf(out, "Successfully replaced %s with %s\n", oldName, newPath)
	return nil
}

// Interactive runs the numbered menu until the operator exits or in is exhausted.
func Interactive(ctx context.Context, store Store, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(text string) (string, bool) {
		fmt.Fprint(out, text)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, "\nInteractive Image Replacement")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	for {
		fmt.Fprintln(out, "\nOptions:")
		fmt.Fprintln(out, "1. List current images")
		fmt.Fprintln(out, "2. Replace an image")
		fmt.Fprintln(out, "3. Exit")

		choice, ok := prompt("\nEnter your choice (1-3): ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			if err := List(ctx, store, out); err != nil {
				return err
			}
		case "2":
			images, err := Images(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nAvailable images to replace:")
			for i, img := range images {
				fmt.Fprintf(out, "  %d. %s\n", i+1, img.Name)
			}

			answer, ok := prompt(fmt.Sprintf("\nSelect image to replace (1-%d): ", len(images)))
			if !ok {
				return scanner.Err()
			}
			n, err := strconv.Atoi(answer)
			if err != nil {
				fmt.Fprintln(out, "Please enter a valid number!")
				continue
			}
			if n < 1 || n > len(images) {
				fmt.Fprintln(out, "Invalid selection!")
				continue
			}

			target := images[n-1].Name
			newPath, ok := prompt(fmt.Sprintf("Enter path to new image for %s: ", target))
			if !ok {
				return scanner.Err()
			}
			// Missing files were already reported by Replace.
			if err := Replace(ctx, store, target, newPath, out); err != nil && !errs.IsFileMissingError(err) {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "3":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice! Please enter 1, 2, or 3.")
		}
	}
}
