package main

import (
	"flag"

	"doctorbot/config"
	"doctorbot/internal/domain/entity"
	"doctorbot/internal/infrastructure/database"
	"doctorbot/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Creates a back-office editor account. There is no self-registration;
// this is the only way accounts come into existence.
func main() {
	email := flag.String("email", "", "editor email")
	password := flag.String("password", "", "editor password")
	fullName := flag.String("name", "", "editor full name")
	flag.Parse()

	if *email == "" || *password == "" || *fullName == "" {
		logrus.Fatal("email, password and name are all required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	editorRepo := repository.NewEditorRepository()
	editor := entity.Editor{
		Email:    *email,
		Password: string(hashed),
		FullName: *fullName,
	}

	if err := editorRepo.Create(db, &editor); err != nil {
		logrus.Fatalf("Failed to create editor: %v", err)
	}

	logrus.Infof("Editor %s created with id %d", editor.Email, editor.ID)
}
