package models

import (
	"time"

	"github.com/luffy2025/rcli/internal/domain/keys"
)

// SigningKeyModel is the GORM database model for signing key metadata
type SigningKeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Format          string    `gorm:"not null;index;type:varchar(32)"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (SigningKeyModel) TableName() string {
	return "signing_keys"
}

// ToDomain converts GORM model to domain entity
func (m *SigningKeyModel) ToDomain() *keys.SigningKeyMeta {
	return &keys.SigningKeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Format:          m.Format,
		Type:            m.Type,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SigningKeyModel) FromDomain(k *keys.SigningKeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Format = k.Format
	m.Type = k.Type
	m.DateTimeCreated = k.DateTimeCreated
	m.UserID = k.UserID
}
