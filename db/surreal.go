package db

import (
	"context"
	"fmt"

	"github.com/TFMV/indentscore/types"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

func NewSurrealDB(config Config) (*SurrealDB, error) {
	db, err := surrealdb.New(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SurrealDB{
		db:     db,
		config: config,
	}, nil
}

func (s *SurrealDB) Initialize(ctx context.Context) error {
	if err := s.db.Use(s.config.Namespace, s.config.Database); err != nil {
		return fmt.Errorf("failed to set namespace/database: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: s.config.Username,
		Password: s.config.Password,
	}
	token, err := s.db.SignIn(authData)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	if err := s.db.Authenticate(token); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	return nil
}

func (s *SurrealDB) StoreScan(ctx context.Context, report types.ScanReport) error {
	// Store per-file reports
	for _, file := range report.Files {
		if _, err := surrealdb.Create[types.FileReport](s.db, models.Table("files"), file); err != nil {
			return fmt.Errorf("error storing report for %s: %v", file.Path, err)
		}
	}

	// Store the scan summary without the per-file payload
	summary := report
	summary.Files = nil
	if _, err := surrealdb.Create[types.ScanReport](s.db, models.Table("scans"), summary); err != nil {
		return fmt.Errorf("error storing scan summary: %v", err)
	}

	return nil
}
