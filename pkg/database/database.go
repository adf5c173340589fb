package database

import (
	"fmt"
	"inspira_backend/internal/config"
	"inspira_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection. Schema migration runs unless the
// caller disables it, which release deployments do without the migrate flag.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.Lesson{},
		&model.LessonAttachment{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.Enrollment{},
		&model.LessonCompletion{},
		&model.QuizAttempt{},
		&model.Coupon{},
		&model.AccessCode{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
