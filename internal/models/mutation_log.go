package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MutationCreateMerchant    = "create_merchant"
	MutationUpdateMerchant    = "update_merchant"
	MutationCreateTransaction = "create_transaction"

	MutationResourceMerchant    = "merchant"
	MutationResourceTransaction = "transaction"

	MutationOutcomeSuccess  = "success"
	MutationOutcomeRejected = "rejected"
	MutationOutcomeFailed   = "failed"
)

// MutationLog records one submit attempt against the upstream API. Submits
// are never retried automatically, so each row is one user action.
type MutationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Operation    string    `gorm:"type:varchar(50);not null;index" json:"operation"`
	Resource     string    `gorm:"type:varchar(50);not null" json:"resource"`
	ResourceID   string    `gorm:"type:varchar(255);index" json:"resource_id,omitempty"`
	Outcome      string    `gorm:"type:varchar(20);not null;index" json:"outcome"`
	ResponseCode string    `gorm:"type:varchar(20)" json:"response_code,omitempty"`
	Message      string    `gorm:"type:text" json:"message,omitempty"`
	TraceID      string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	Payload      JSONBMap  `gorm:"type:text" json:"payload,omitempty"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}

func (ml *MutationLog) SetPayload(key string, value interface{}) {
	if ml.Payload == nil {
		ml.Payload = make(JSONBMap)
	}
	ml.Payload[key] = value
}

func (ml *MutationLog) Succeeded() bool {
	return ml.Outcome == MutationOutcomeSuccess
}

func (ml *MutationLog) String() string {
	return fmt.Sprintf("MutationLog[Op: %s, Resource: %s/%s, Outcome: %s, Time: %s]",
		ml.Operation, ml.Resource, ml.ResourceID, ml.Outcome, ml.CreatedAt.Format(time.RFC3339))
}

func (ml *MutationLog) TableName() string {
	return "mutation_logs"
}

func (ml *MutationLog) BeforeCreate(tx *gorm.DB) error {
	if ml.ID == uuid.Nil {
		ml.ID = uuid.New()
	}

	if ml.CreatedAt.IsZero() {
		ml.CreatedAt = time.Now()
	}
	return nil
}

// MutationLogFilters narrows mutation log queries
type MutationLogFilters struct {
	Operation string
	Outcome   string
	Since     *time.Time
}

// JSONBMap stores arbitrary key/value data as JSON text
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
