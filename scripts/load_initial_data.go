package main

import (
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"admin-console-backend/internal/config"
	"admin-console-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("dir", "scripts/data", "directory of seed YAML documents")
	flag.Parse()

	_ = godotenv.Load()
	logrus.Info("Loading initial data from YAML files")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	data, files, err := loadDataFromYAMLFiles(*dataDir)
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := database.Seed(db, data); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"files":   files,
		"users":   len(data.Users),
		"groups":  len(data.Groups),
		"events":  len(data.Events),
		"surveys": len(data.Surveys),
	}).Info("Initial data loaded; tables that already had rows were left untouched")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
// The embedded baseline is not applied so only the given documents are loaded.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles merges every .yaml/.yml document under dataDir, in path order
func loadDataFromYAMLFiles(dataDir string) (*database.SeedData, int, error) {
	var paths []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !d.IsDir() && (ext == ".yaml" || ext == ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	sort.Strings(paths)

	merged := &database.SeedData{}
	for _, path := range paths {
		doc, err := database.LoadSeedFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", path, err)
		}
		merged.Users = append(merged.Users, doc.Users...)
		merged.Groups = append(merged.Groups, doc.Groups...)
		merged.Events = append(merged.Events, doc.Events...)
		merged.Surveys = append(merged.Surveys, doc.Surveys...)
	}
	return merged, len(paths), nil
}
