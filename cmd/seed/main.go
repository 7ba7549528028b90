package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examdesk/internal/config"
	"examdesk/internal/db"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

const (
	adminEmail    = "admin@examdesk.local"
	adminPassword = "admin123456"
)

// Seeds an admin user and one exam → course → paper → question chain so a
// fresh install has something to log in with and list.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Course{},
		&model.Paper{},
		&model.Question{},
		&model.Enrollment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	users := repository.NewUserRepository(gormDB)
	exams := repository.NewExamRepository(gormDB)
	courses := repository.NewCourseRepository(gormDB)
	papers := repository.NewPaperRepository(gormDB)
	questions := repository.NewQuestionRepository(gormDB)

	if err := seedAdmin(ctx, users); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedCatalogue(ctx, exams, courses, papers, questions); err != nil {
		log.Fatalf("Failed to seed catalogue: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	if _, err := users.FindByEmailFold(ctx, adminEmail); err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Roles:        datatypes.NewJSONSlice([]string{"Admin"}),
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user %s created", adminEmail)
	return nil
}

func seedCatalogue(
	ctx context.Context,
	exams repository.ExamRepository,
	courses repository.CourseRepository,
	papers repository.PaperRepository,
	questions repository.QuestionRepository,
) error {
	if _, err := exams.FindByTitleFold(ctx, "Sample Certification"); err == nil {
		log.Println("Sample catalogue already exists, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	exam := &model.Exam{Title: "Sample Certification"}
	if err := exams.Create(ctx, exam); err != nil {
		return err
	}

	course := &model.Course{
		Title:     "Foundations",
		ExamID:    exam.ID,
		Structure: "3 papers per year",
	}
	if err := courses.Create(ctx, course); err != nil {
		return err
	}

	paper := &model.Paper{Year: "2025", CourseID: course.ID}
	if err := papers.Create(ctx, paper); err != nil {
		return err
	}

	question := &model.Question{
		Number:  1,
		PaperID: paper.ID,
		Text:    "Define the term referential integrity.",
		Answer:  "Dependent records must reference an existing parent.",
	}
	if err := questions.Create(ctx, question); err != nil {
		return err
	}

	log.Println("Sample catalogue created")
	return nil
}
