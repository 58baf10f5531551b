package database

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"admin-console-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultSeed []byte

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
	Status   bool   `yaml:"status"`
}

type GroupData struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description,omitempty"`
}

type EventData struct {
	Name        string    `yaml:"name"`
	Description *string   `yaml:"description,omitempty"`
	TimeStart   time.Time `yaml:"time_start"`
	TimeEnd     time.Time `yaml:"time_end"`
	Status      string    `yaml:"status"`
}

type SurveyData struct {
	Name     string             `yaml:"name"`
	Form     []models.FormField `yaml:"form"`
	SetPoint *string            `yaml:"set_point,omitempty"`
	Status   string             `yaml:"status"`
}

// SeedData is the document format of seed.yaml and of files given to the loader script
type SeedData struct {
	Users   []UserData   `yaml:"users"`
	Groups  []GroupData  `yaml:"groups"`
	Events  []EventData  `yaml:"events"`
	Surveys []SurveyData `yaml:"surveys"`
}

// DefaultSeed parses the baseline rows embedded in the binary
func DefaultSeed() (*SeedData, error) {
	return parseSeed(defaultSeed)
}

// LoadSeedFile parses a seed document from disk
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(raw)
}

// Seed inserts data into whichever tables are still empty, in a single transaction
func Seed(db *gorm.DB, data *SeedData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return seedTables(tx, data)
	})
}

func parseSeed(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

func seedTables(tx *gorm.DB, data *SeedData) error {
	if err := seedUsers(tx, data.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedGroups(tx, data.Groups); err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	if err := seedEvents(tx, data.Events); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	if err := seedSurveys(tx, data.Surveys); err != nil {
		return fmt.Errorf("seed surveys: %w", err)
	}
	return nil
}

// isEmpty is the existence check guarding each table against duplicate seeding
func isEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedUsers(tx *gorm.DB, rows []UserData) error {
	if len(rows) == 0 {
		return nil
	}
	empty, err := isEmpty(tx, &models.User{})
	if err != nil || !empty {
		return err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		hash, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", row.Username, err)
		}
		users = append(users, models.User{
			Username: row.Username,
			Email:    row.Email,
			Role:     models.Role(row.Role),
			Password: string(hash),
			Status:   row.Status,
		})
	}
	return tx.Create(&users).Error
}

func seedGroups(tx *gorm.DB, rows []GroupData) error {
	if len(rows) == 0 {
		return nil
	}
	empty, err := isEmpty(tx, &models.Group{})
	if err != nil || !empty {
		return err
	}

	groups := make([]models.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, models.Group{Name: row.Name, Description: row.Description})
	}
	return tx.Create(&groups).Error
}

func seedEvents(tx *gorm.DB, rows []EventData) error {
	if len(rows) == 0 {
		return nil
	}
	empty, err := isEmpty(tx, &models.Event{})
	if err != nil || !empty {
		return err
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		if !row.TimeEnd.After(row.TimeStart) {
			return fmt.Errorf("event %q: time_end must be after time_start", row.Name)
		}
		events = append(events, models.Event{
			Name:        row.Name,
			Description: row.Description,
			TimeStart:   row.TimeStart,
			TimeEnd:     row.TimeEnd,
			Status:      models.EventStatus(row.Status),
		})
	}
	return tx.Create(&events).Error
}

func seedSurveys(tx *gorm.DB, rows []SurveyData) error {
	if len(rows) == 0 {
		return nil
	}
	empty, err := isEmpty(tx, &models.Survey{})
	if err != nil || !empty {
		return err
	}

	surveys := make([]models.Survey, 0, len(rows))
	for _, row := range rows {
		surveys = append(surveys, models.Survey{
			Name:     row.Name,
			Form:     row.Form,
			SetPoint: row.SetPoint,
			Status:   models.SurveyStatus(row.Status),
		})
	}
	return tx.Create(&surveys).Error
}
