package cmd

import (
	"database/sql"
	"fmt"

	"stowage/internal/adapters/out/postgres/containerrepo"
	"stowage/internal/adapters/out/postgres/shiprepo"

	_ "github.com/lib/pq" // postgres driver for the bootstrap connection
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to postgres, creating the target database first if
// it does not exist, and migrates the schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	if err := createDatabaseIfNotExists(config); err != nil {
		return nil, fmt.Errorf("failed to bootstrap database: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(
		&shiprepo.ShipDTO{},
		&containerrepo.ContainerDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// createDatabaseIfNotExists connects to the maintenance database and creates
// the application database when missing. CREATE DATABASE cannot run inside a
// transaction, so this uses a plain database/sql connection.
func createDatabaseIfNotExists(config Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	if err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName,
	).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", config.DBName))
	return err
}
