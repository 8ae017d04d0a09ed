package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"luster/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	// Generate timestamp
	timestamp := time.Now().Format("20060102150405")

	// Generate file names
	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	// Create up migration file
	upContent := g.generateUpMigrationTemplate(name)
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	// Create down migration file
	downContent := g.generateDownMigrationTemplate(name)
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateUpMigrationTemplate generates a template for up migration
func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Description: Add description here

-- Add your SQL statements here
-- Example:
-- CREATE TABLE example_table (
--     id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
--     name VARCHAR(255) NOT NULL,
--     created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
--     updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
-- );

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// generateDownMigrationTemplate generates a template for down migration
func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
-- Description: Add rollback description here

-- Add your rollback SQL statements here
-- Example:
-- DROP TABLE IF EXISTS example_table;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateInspectionTablesMigration creates the initial inspection schema migration
func (g *Generator) CreateInspectionTablesMigration() error {
	g.logger.Infow("creating initial inspection tables migration")

	// Use a fixed timestamp for the initial migration
	timestamp := "000001"
	name := "create_inspection_tables"

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upContent := g.generateInspectionTablesUpMigration()
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create inspection tables up migration: %w", err)
	}

	downContent := g.generateInspectionTablesDownMigration()
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create inspection tables down migration: %w", err)
	}

	g.logger.Infow("inspection tables migration created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// generateInspectionTablesUpMigration generates the up migration for the inspection schema.
// Timestamps are stored as unix milliseconds to match the persistence models.
func (g *Generator) generateInspectionTablesUpMigration() string {
	return `-- Migration: Create inspection tables
-- Created: Initial migration
-- Description: Inspection lifecycle schema: templates, inspections, items,
-- corrective actions, sign-offs, activity log and area guidance.

CREATE TABLE IF NOT EXISTS inspection_templates (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sid VARCHAR(32) NOT NULL UNIQUE,
    name VARCHAR(200) NOT NULL,
    description TEXT,
    contract_id BIGINT UNSIGNED NULL,
    archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_inspection_templates_name (name),
    INDEX idx_inspection_templates_contract_id (contract_id),
    INDEX idx_inspection_templates_archived (archived)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspection_template_items (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    template_id BIGINT UNSIGNED NOT NULL,
    position INT NOT NULL DEFAULT 0,
    category VARCHAR(100) NOT NULL,
    text TEXT NOT NULL,
    weight INT NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_inspection_template_items_template_id (template_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspections (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    number VARCHAR(50) NOT NULL UNIQUE,
    status VARCHAR(20) NOT NULL,
    facility_id BIGINT UNSIGNED NOT NULL,
    inspector_id BIGINT UNSIGNED NOT NULL,
    scheduled_date BIGINT NOT NULL,
    job_id BIGINT UNSIGNED NULL,
    appointment_id BIGINT UNSIGNED NULL,
    template_id BIGINT UNSIGNED NULL,
    reinspection_of_id BIGINT UNSIGNED NULL,
    notes TEXT,
    summary TEXT,
    overall_score INT NULL,
    overall_rating VARCHAR(20) NULL,
    version INT NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    started_at BIGINT NULL,
    completed_at BIGINT NULL,
    canceled_at BIGINT NULL,
    INDEX idx_inspections_status (status),
    INDEX idx_inspections_facility_id (facility_id),
    INDEX idx_inspections_inspector_id (inspector_id),
    INDEX idx_inspections_scheduled_date (scheduled_date),
    INDEX idx_inspections_job_id (job_id),
    INDEX idx_inspections_template_id (template_id),
    INDEX idx_inspections_reinspection_of_id (reinspection_of_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspection_items (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    inspection_id BIGINT UNSIGNED NOT NULL,
    category VARCHAR(100) NOT NULL,
    text TEXT NOT NULL,
    weight INT NOT NULL DEFAULT 1,
    score VARCHAR(10),
    rating INT NULL,
    notes TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_inspection_items_inspection_id (inspection_id),
    INDEX idx_inspection_items_category (category)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspection_corrective_actions (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    inspection_id BIGINT UNSIGNED NOT NULL,
    item_id BIGINT UNSIGNED NULL,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    severity VARCHAR(20) NOT NULL,
    status VARCHAR(20) NOT NULL,
    due_date BIGINT NULL,
    created_by BIGINT UNSIGNED NOT NULL,
    verified_by BIGINT UNSIGNED NULL,
    verified_at BIGINT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_corrective_actions_inspection_id (inspection_id),
    INDEX idx_corrective_actions_item_id (item_id),
    INDEX idx_corrective_actions_severity (severity),
    INDEX idx_corrective_actions_status (status),
    INDEX idx_corrective_actions_due_date (due_date),
    INDEX idx_corrective_actions_created_by (created_by)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspection_signoffs (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    inspection_id BIGINT UNSIGNED NOT NULL,
    signer_type VARCHAR(20) NOT NULL,
    signer_name VARCHAR(200) NOT NULL,
    signer_title VARCHAR(200),
    comments TEXT,
    signed_at BIGINT NOT NULL,
    created_at BIGINT NOT NULL,
    INDEX idx_inspection_signoffs_inspection_id (inspection_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS inspection_activities (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    inspection_id BIGINT UNSIGNED NOT NULL,
    action VARCHAR(50) NOT NULL,
    actor_id BIGINT UNSIGNED NULL,
    metadata JSON NULL,
    created_at BIGINT NOT NULL,
    INDEX idx_inspection_activities_inspection_id (inspection_id),
    INDEX idx_inspection_activities_action (action),
    INDEX idx_inspection_activities_actor_id (actor_id),
    INDEX idx_inspection_activities_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS area_guidance (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    category VARCHAR(100) NOT NULL,
    hint TEXT NOT NULL,
    position INT NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_area_guidance_category (category)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
}

// generateInspectionTablesDownMigration generates the down migration for the inspection schema
func (g *Generator) generateInspectionTablesDownMigration() string {
	return `-- Rollback Migration: Create inspection tables
-- Created: Initial migration rollback
-- Description: Drop the inspection lifecycle schema

DROP TABLE IF EXISTS area_guidance;
DROP TABLE IF EXISTS inspection_activities;
DROP TABLE IF EXISTS inspection_signoffs;
DROP TABLE IF EXISTS inspection_corrective_actions;
DROP TABLE IF EXISTS inspection_items;
DROP TABLE IF EXISTS inspections;
DROP TABLE IF EXISTS inspection_template_items;
DROP TABLE IF EXISTS inspection_templates;
`
}
