package models

import (
	"github.com/banktrack/backend/internal/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Resource is any model that can be referenced by ID.
type Resource interface {
	Bank | Category | Transaction
}

// Exists reports whether a resource with the given ID exists.
//
// Malformed IDs, missing resources and database errors all report false.
func Exists[R Resource](db *gorm.DB, id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}

	var (
		resource R
		count    int64
	)

	err = db.Model(&resource).Where("id = ?", parsed.UUID).Count(&count).Error
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msgf("could not check if %T exists", resource)
		return false
	}

	return count > 0
}
