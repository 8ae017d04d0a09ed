// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// NotArchived is a GORM scope that filters out archived records.
// Archiving is a soft-delete: archived rows stay in place so previously
// instantiated inspections keep resolving their template reference.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.NotArchived()).Find(&results)
func NotArchived() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("archived = ?", false)
	}
}

// Paginate is a GORM scope that applies offset/limit pagination.
// Page is 1-based; a page size below 1 is left to the caller to normalize.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
