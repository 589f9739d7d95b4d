// Package seed loads sample portfolio content, either replacing what is
// there or adding only the records that are missing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/forms"
	"github.com/rpupo63/portfolio-site/media"
	"github.com/rpupo63/portfolio-site/models"
)

// Summary counts what a seed run did.
type Summary struct {
	Created  int
	Existing int
}

type Seeder struct {
	db        database.Database
	out       io.Writer
	images    media.Store
	sourceDir string
}

type Option func(*Seeder)

// WithImages copies project images found in sourceDir into store under projects/.
func WithImages(store media.Store, sourceDir string) Option {
	return func(s *Seeder) {
		s.images = store
		s.sourceDir = sourceDir
	}
}

func New(db database.Database, out io.Writer, opts ...Option) *Seeder {
	s := &Seeder{db: db, out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Seeder) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func validate(label string, v any) error {
	if problems := forms.Validate(v); len(problems) > 0 {
		return errs.NewInvalidFieldError(problems[0].Field, fmt.Sprintf("%s: %s", label, problems[0].Message))
	}
	return nil
}

// Reset deletes every project, skill, experience and education row and
// inserts ds in their place. Each kind is replaced in its own transaction.
func (s *Seeder) Reset(ctx context.Context, ds Dataset) (Summary, error) {
	var sum Summary

	err := s.db.Transaction(func(tx database.Database) error {
		if _, err := tx.ProjectRepo().DeleteAll(ctx); err != nil {
			return errs.NewDatabaseError("delete", "projects", err)
		}
		s.printf("Cleared existing projects\n")
		for _, seed := range ds.Projects {
			p := seed.Project
			if err := s.attachImage(ctx, &p, seed.ImageName); err != nil {
				return err
			}
			if err := validate(p.Title, p); err != nil {
				return err
			}
			if err := tx.ProjectRepo().Add(ctx, &p); err != nil {
				return errs.NewDatabaseError("insert", "project", err)
			}
			s.printf("Created project: %s\n", p.Title)
			sum.Created++
		}
		s.printf("\nAdded %d sample projects successfully!\n\n", len(ds.Projects))
		return nil
	})
	if err != nil {
		return sum, err
	}

	err = s.db.Transaction(func(tx database.Database) error {
		if _, err := tx.SkillRepo().DeleteAll(ctx); err != nil {
			return errs.NewDatabaseError("delete", "skills", err)
		}
		s.printf("Cleared existing skills\n")
		for _, skill := range ds.Skills {
			if err := validate(skill.Name, skill); err != nil {
				return err
			}
			if err := tx.SkillRepo().Add(ctx, &skill); err != nil {
				return errs.NewDatabaseError("insert", "skill", err)
			}
			s.printf("Created skill: %s\n", skill.Name)
			sum.Created++
		}
		s.printf("\nAdded %d sample skills successfully!\n\n", len(ds.Skills))
		return nil
	})
	if err != nil {
		return sum, err
	}

	err = s.db.Transaction(func(tx database.Database) error {
		if _, err := tx.ExperienceRepo().DeleteAll(ctx); err != nil {
			return errs.NewDatabaseError("delete", "experience", err)
		}
		s.printf("Cleared existing experience\n")
		for _, exp := range ds.Experiences {
			if err := validate(exp.String(), exp); err != nil {
				return err
			}
			if err := tx.ExperienceRepo().Add(ctx, &exp); err != nil {
				return errs.NewDatabaseError("insert", "experience", err)
			}
			s.printf("Created experience: %s\n", exp)
			sum.Created++
		}
		s.printf("\nAdded %d sample work experiences successfully!\n\n", len(ds.Experiences))
		return nil
	})
	if err != nil {
		return sum, err
	}

	err = s.db.Transaction(func(tx database.Database) error {
		if _, err := tx.EducationRepo().DeleteAll(ctx); err != nil {
			return errs.NewDatabaseError("delete", "education", err)
		}
		s.printf("Cleared existing education\n")
		for _, edu := range ds.Education {
			if err := validate(edu.String(), edu); err != nil {
				return err
			}
			if err := tx.EducationRepo().Add(ctx, &edu); err != nil {
				return errs.NewDatabaseError("insert", "education", err)
			}
			s.printf("Created education: %s\n", edu)
			sum.Created++
		}
		s.printf("\nAdded %d sample education records successfully!\n", len(ds.Education))
		return nil
	})
	if err != nil {
		return sum, err
	}

	s.printf("%s\nSummary: %d created, %d already existed\n", strings.Repeat("=", 50), sum.Created, sum.Existing)
	return sum, nil
}

// Upsert inserts each record of ds whose natural key is not yet present and
// leaves existing rows untouched.
func (s *Seeder) Upsert(ctx context.Context, ds Dataset) (Summary, error) {
	var sum Summary
	tally := func(created bool, kind, label string) {
		if created {
			sum.Created++
			s.printf("Created %s: %s\n", strings.ToLower(kind), label)
			return
		}
		sum.Existing++
		s.printf("%s already exists: %s\n", kind, label)
	}

	s.printf("\nCreating sample projects...\n")
	for _, seed := range ds.Projects {
		p := seed.Project
		created, err := s.insertIfAbsent(func(tx database.Database) (bool, error) {
			_, err := tx.ProjectRepo().FindByTitle(ctx, p.Title)
			return present(err)
		}, func(tx database.Database) error {
			if err := s.attachImage(ctx, &p, seed.ImageName); err != nil {
				return err
			}
			if err := validate(p.Title, p); err != nil {
				return err
			}
			return tx.ProjectRepo().Add(ctx, &p)
		}, "project")
		if err != nil {
			return sum, err
		}
		tally(created, "Project", p.Title)
	}

	s.printf("\nCreating sample skills...\n")
	for _, skill := range ds.Skills {
		created, err := s.insertIfAbsent(func(tx database.Database) (bool, error) {
			_, err := tx.SkillRepo().FindByName(ctx, skill.Name)
			return present(err)
		}, func(tx database.Database) error {
			if err := validate(skill.Name, skill); err != nil {
				return err
			}
			return tx.SkillRepo().Add(ctx, &skill)
		}, "skill")
		if err != nil {
			return sum, err
		}
		tally(created, "Skill", skill.Name)
	}

	s.printf("\nCreating sample experience...\n")
	for _, exp := range ds.Experiences {
		created, err := s.insertIfAbsent(func(tx database.Database) (bool, error) {
			_, err := tx.ExperienceRepo().FindByCompanyPosition(ctx, exp.Company, exp.Position)
			return present(err)
		}, func(tx database.Database) error {
			if err := validate(exp.String(), exp); err != nil {
				return err
			}
			return tx.ExperienceRepo().Add(ctx, &exp)
		}, "experience")
		if err != nil {
			return sum, err
		}
		tally(created, "Experience", exp.String())
	}

	s.printf("\nCreating sample education...\n")
	for _, edu := range ds.Education {
		created, err := s.insertIfAbsent(func(tx database.Database) (bool, error) {
			_, err := tx.EducationRepo().FindByNaturalKey(ctx, edu.Institution, edu.Degree, edu.FieldOfStudy)
			return present(err)
		}, func(tx database.Database) error {
			if err := validate(edu.String(), edu); err != nil {
				return err
			}
			return tx.EducationRepo().Add(ctx, &edu)
		}, "education")
		if err != nil {
			return sum, err
		}
		tally(created, "Education", edu.String())
	}

	s.printf("\n%s\nSample data population completed!\nSummary: %d created, %d already existed\n",
		strings.Repeat("=", 50), sum.Created, sum.Existing)
	return sum, nil
}

// present turns a natural-key lookup result into found / not found.
func present(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errs.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// insertIfAbsent runs lookup and, when nothing matched, insert in one
// transaction. A unique violation from a concurrent run counts as existing.
func (s *Seeder) insertIfAbsent(lookup func(database.Database) (bool, error), insert func(database.Database) error, entity string) (bool, error) {
	created := false
	err := s.db.Transaction(func(tx database.Database) error {
		found, err := lookup(tx)
		if err != nil || found {
			return err
		}
		if err := insert(tx); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err == nil {
		return created, nil
	}

	classified := errs.NewDatabaseError("insert", entity, err)
	if errs.IsUniqueConstraintViolationError(classified) {
		return false, nil
	}
	return false, classified
}

// attachImage copies sourceDir/name into the media store and points p at it.
// A missing source file leaves the project without an image.
func (s *Seeder) attachImage(ctx context.Context, p *models.Project, name string) error {
	if name == "" || s.images == nil {
		return nil
	}

	f, err := os.Open(filepath.Join(s.sourceDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	ref := models.ImagePrefix + name
	if err := s.images.Put(ctx, ref, f); err != nil {
		return fmt.Errorf("copy image %s: %w", name, err)
	}
	p.Image = &ref
	return nil
}
