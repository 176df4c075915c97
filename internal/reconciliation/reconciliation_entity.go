package reconciliation

import (
	"time"

	"go-leave/internal/request"

	"github.com/google/uuid"
)

// Document is an attachment (medical note, signed form) of a request.
type Document struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	RequestKind request.Kind `gorm:"type:varchar(10);not null;index:idx_documents_request"`
	RequestID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_documents_request"`
	FileName    string       `gorm:"type:varchar(255);not null"`
	StoragePath string       `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

func (Document) TableName() string { return "documents" }

type DocumentSignature struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index:idx_document_signatures_document"`
	SignerID   uuid.UUID `gorm:"type:uuid;not null"`
	SignedAt   time.Time `gorm:"not null"`
}

func (DocumentSignature) TableName() string { return "document_signatures" }

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_notifications_created_at"`
}

func (Notification) TableName() string { return "notifications" }

type SessionToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(128);not null;uniqueIndex:uq_session_token_hash"`
	ExpiresAt time.Time `gorm:"not null;index:idx_session_tokens_expires_at"`
	CreatedAt time.Time
}

func (SessionToken) TableName() string { return "session_tokens" }
