package audit

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/junsalon/salon-api/internal/models"
)

type Logger struct {
	db  *gorm.DB
	log zerolog.Logger
}

func New(db *gorm.DB, log zerolog.Logger) *Logger {
	return &Logger{db: db, log: log}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			// The entry is still worth keeping; only the metadata is lost.
			l.log.Warn().Err(err).Str("action", action).
				Msg("audit metadata marshal failed, dropping metadata")
		} else {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

// Compile-time check
var _ Sink = (*Logger)(nil)
