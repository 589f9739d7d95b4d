package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) Database {
	t.Helper()

	db, err := Open(map[string]string{
		"DB_TYPE":     "sqlite",
		"SQLITE_PATH": filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	database := New(db)
	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}

func day(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func TestDatabase_Ping(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestGormLogLevelFollowsLogLevel(t *testing.T) {
	prevGlobal, prevLogger := zerolog.GlobalLevel(), zlog.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevGlobal)
		zlog.Logger = prevLogger
	})

	tests := []struct {
		level string
		want  logger.LogLevel
	}{
		{"debug", logger.Info},
		{"info", logger.Warn},
		{"warn", logger.Warn},
		{"error", logger.Error},
		{"bogus", logger.Warn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			config.SetupLogging(map[string]string{"LOG_LEVEL": tt.level, "LOG_FORMAT": "json"})
			if got := gormLogLevel(appLogLevel()); got != tt.want {
				t.Errorf("gorm level after LOG_LEVEL=%s = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestDialector_UnsupportedType(t *testing.T) {
	_, err := Dialector(map[string]string{"DB_TYPE": "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported DB_TYPE")
	}
}

func TestProjectRepo_FindFeatured(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, featured := range []bool{true, false, true, true, true} {
		p := &models.Project{
			Title:        "Project " + string(rune('A'+i)),
			Description:  "desc",
			Technologies: "Go",
			Featured:     featured,
			CreatedDate:  base.Add(time.Duration(i) * 24 * time.Hour),
		}
		if err := repo.Add(ctx, p); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	featured, err := repo.FindFeatured(ctx, 3, OrderByCreatedDesc)
	if err != nil {
		t.Fatalf("FindFeatured() error = %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("got %d featured projects, want 3", len(featured))
	}

	want := []string{"Project E", "Project D", "Project C"}
	for i, p := range featured {
		if !p.Featured {
			t.Errorf("project %q is not featured", p.Title)
		}
		if p.Title != want[i] {
			t.Errorf("featured[%d] = %q, want %q", i, p.Title, want[i])
		}
	}
}

func TestProjectRepo_FindAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	dates := []time.Time{
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		p := &models.Project{Title: d.Format("2006") + "-" + string(rune('a'+i)), Description: "d", Technologies: "Go", CreatedDate: d}
		if err := repo.Add(ctx, p); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	projects, err := repo.FindAll(ctx, OrderByCreatedDesc)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	for i := 1; i < len(projects); i++ {
		if projects[i].CreatedDate.After(projects[i-1].CreatedDate) {
			t.Errorf("projects not newest first: %v before %v", projects[i-1].CreatedDate, projects[i].CreatedDate)
		}
	}
}

func TestProjectRepo_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	if _, err := repo.FindByID(ctx, 999999); !errs.IsNotFound(err) {
		t.Errorf("FindByID() error = %v, want not found", err)
	}
	if _, err := repo.FindByTitle(ctx, "missing"); !errs.IsNotFound(err) {
		t.Errorf("FindByTitle() error = %v, want not found", err)
	}
	if err := repo.Delete(ctx, 999999); !errs.IsNotFound(err) {
		t.Errorf("Delete() error = %v, want not found", err)
	}
	if err := repo.SetFeatured(ctx, 999999, true); !errs.IsNotFound(err) {
		t.Errorf("SetFeatured() error = %v, want not found", err)
	}
	if err := repo.Update(ctx, &models.Project{ID: 999999, Title: "x", Description: "x", Technologies: "x"}); !errs.IsNotFound(err) {
		t.Errorf("Update() error = %v, want not found", err)
	}
}

func TestProjectRepo_UpdateKeepsCreatedDate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	created := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	p := &models.Project{Title: "Original", Description: "d", Technologies: "Go", CreatedDate: created}
	if err := repo.Add(ctx, p); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := repo.Update(ctx, &models.Project{ID: p.ID, Title: "Renamed", Description: "d2", Technologies: "Go, SQL"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "Renamed" || got.Technologies != "Go, SQL" {
		t.Errorf("update not applied: %+v", got)
	}
	if !got.CreatedDate.Equal(created) {
		t.Errorf("CreatedDate = %v, want %v", got.CreatedDate, created)
	}
}

func TestProjectRepo_DuplicateTitle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	if err := repo.Add(ctx, &models.Project{Title: "Same", Description: "d", Technologies: "Go"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := repo.Add(ctx, &models.Project{Title: "Same", Description: "d", Technologies: "Go"})
	if err == nil {
		t.Fatal("expected unique violation")
	}
	if !errs.IsUniqueConstraintViolationError(errs.NewDatabaseError("insert", "project", err)) {
		t.Errorf("error %v not classified as unique violation", err)
	}
}

func TestProjectRepo_Search(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	for _, p := range []*models.Project{
		{Title: "Weather Dashboard", Description: "Charts", Technologies: "Vue", Featured: true},
		{Title: "Blog Platform", Description: "Markdown blog", Technologies: "Django"},
		{Title: "Chat", Description: "Realtime", Technologies: "Go, WebSockets"},
		{Title: "Uptime Monitor", Description: "Alerts at 99.9% availability", Technologies: "Go"},
	} {
		if err := repo.Add(ctx, p); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	tests := []struct {
		name   string
		filter ProjectFilter
		want   int
	}{
		{"empty filter", ProjectFilter{}, 4},
		{"title case insensitive", ProjectFilter{Search: "weather"}, 1},
		{"technologies", ProjectFilter{Search: "WEBSOCKETS"}, 1},
		{"description", ProjectFilter{Search: "markdown"}, 1},
		{"featured only", ProjectFilter{Featured: boolPtr(true)}, 1},
		{"not featured", ProjectFilter{Featured: boolPtr(false)}, 3},
		{"no match", ProjectFilter{Search: "cobol"}, 0},
		{"percent is literal", ProjectFilter{Search: "%"}, 1},
		{"underscore is literal", ProjectFilter{Search: "_"}, 0},
		{"backslash is literal", ProjectFilter{Search: `\`}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filter, OrderByCreatedDesc)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Search() returned %d projects, want %d", len(got), tt.want)
			}
		})
	}
}

func TestProjectRepo_DeleteAll(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ProjectRepo()

	for _, title := range []string{"a", "b"} {
		if err := repo.Add(ctx, &models.Project{Title: title, Description: "d", Technologies: "Go"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteAll() = %d, want 2", n)
	}
	if count, _ := repo.Count(ctx); count != 0 {
		t.Errorf("Count() = %d after DeleteAll, want 0", count)
	}
}

func TestSkillRepo_OrderAndFilter(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.SkillRepo()

	for _, s := range []*models.Skill{
		{Name: "Python", Proficiency: 90, Category: "Programming Languages"},
		{Name: "Docker", Proficiency: 80, Category: "DevOps"},
		{Name: "Go", Proficiency: 85, Category: "Programming Languages"},
	} {
		if err := repo.Add(ctx, s); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	all, err := repo.FindAll(ctx, OrderByCategoryName)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	want := []string{"Docker", "Go", "Python"}
	for i, s := range all {
		if s.Name != want[i] {
			t.Errorf("skill[%d] = %q, want %q", i, s.Name, want[i])
		}
	}

	langs, err := repo.Search(ctx, SkillFilter{Category: "Programming Languages"}, OrderByCategoryName)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(langs) != 2 {
		t.Errorf("Search(category) returned %d skills, want 2", len(langs))
	}

	if _, err := repo.FindByName(ctx, "Go"); err != nil {
		t.Errorf("FindByName() error = %v", err)
	}
}

func TestExperienceRepo_StartDateDesc(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ExperienceRepo()

	if got, err := repo.FindMostRecent(ctx, OrderByStartDateDesc); err != nil || got != nil {
		t.Fatalf("FindMostRecent() on empty table = %v, %v; want nil, nil", got, err)
	}

	end := day(2020, time.May, 31)
	for _, e := range []*models.Experience{
		{Company: "Startup", Position: "Junior", Description: "d", StartDate: day(2018, time.June, 1), EndDate: &end},
		{Company: "Tech Corp", Position: "Senior", Description: "d", StartDate: day(2022, time.January, 1)},
		{Company: "Agency", Position: "Mid", Description: "d", StartDate: day(2020, time.June, 1)},
	} {
		if err := repo.Add(ctx, e); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	all, err := repo.FindAll(ctx, OrderByStartDateDesc)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	for i := 1; i < len(all); i++ {
		if time.Time(all[i].StartDate).After(time.Time(all[i-1].StartDate)) {
			t.Errorf("experience not ordered by start date desc at %d", i)
		}
	}

	latest, err := repo.FindMostRecent(ctx, OrderByStartDateDesc)
	if err != nil {
		t.Fatalf("FindMostRecent() error = %v", err)
	}
	if latest == nil || latest.Company != "Tech Corp" || !latest.IsCurrent() {
		t.Errorf("FindMostRecent() = %+v, want current Tech Corp position", latest)
	}

	from := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	recent, err := repo.Search(ctx, ExperienceFilter{Start: DateRange{From: &from}}, OrderByStartDateDesc)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Search(start_from=2019) returned %d rows, want 2", len(recent))
	}

	if _, err := repo.FindByCompanyPosition(ctx, "Agency", "Mid"); err != nil {
		t.Errorf("FindByCompanyPosition() error = %v", err)
	}
}

func TestEducationRepo_GPARoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.EducationRepo()

	edu := &models.Education{
		Institution:  "University of Technology",
		Degree:       "Bachelor of Science",
		FieldOfStudy: "Computer Science",
		StartDate:    day(2016, time.September, 1),
		GPA:          models.NewGPA(3.756),
	}
	if err := repo.Add(ctx, edu); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := repo.FindByNaturalKey(ctx, "University of Technology", "Bachelor of Science", "Computer Science")
	if err != nil {
		t.Fatalf("FindByNaturalKey() error = %v", err)
	}
	if got.GPAString() != "3.76" {
		t.Errorf("GPA = %q, want 3.76", got.GPAString())
	}
	if !got.IsCurrent() {
		t.Error("education without end date should be current")
	}
}

func TestContactRepo_AddAndSearch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := db.ContactRepo()

	c := &models.Contact{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Hi there"}
	if err := repo.Add(ctx, c); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if c.ID == 0 || c.CreatedDate.IsZero() {
		t.Errorf("Add() did not populate id and created date: %+v", c)
	}

	found, err := repo.Search(ctx, ContactFilter{Search: "ADA@"}, OrderByCreatedDesc)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 1 {
		t.Errorf("Search() returned %d contacts, want 1", len(found))
	}
}

func TestTransaction_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := db.Transaction(func(tx Database) error {
		if err := tx.SkillRepo().Add(ctx, &models.Skill{Name: "Rust", Proficiency: 50, Category: "Languages"}); err != nil {
			return err
		}
		return errs.BadRequest("abort")
	})
	if err == nil {
		t.Fatal("expected transaction error")
	}

	if n, _ := db.SkillRepo().Count(ctx); n != 0 {
		t.Errorf("Count() = %d after rollback, want 0", n)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
