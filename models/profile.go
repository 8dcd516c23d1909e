package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/pricing"
)

// StringSlice stores a list of strings as a JSONB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringSlice: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

// ProviderProfile holds the public profile of a research consultant.
type ProviderProfile struct {
	gorm.Model
	ProviderID        uint        `json:"provider_id" gorm:"uniqueIndex"`
	Provider          User        `json:"provider" gorm:"foreignKey:ProviderID"`
	Headline          string      `json:"headline"`
	Bio               string      `json:"bio"`
	Institution       string      `json:"institution"`
	Country           string      `json:"country"`
	City              string      `json:"city"`
	AvatarURL         string      `json:"avatar_url"`
	Expertise         StringSlice `json:"expertise" gorm:"type:jsonb"`
	Languages         StringSlice `json:"languages" gorm:"type:jsonb"`
	ResearchInterests StringSlice `json:"research_interests" gorm:"type:jsonb"`
	IsVerified        bool        `json:"is_verified"` // set by admin review
}

// StudentProfile holds the student side of the marketplace.
type StudentProfile struct {
	gorm.Model
	StudentID     uint                  `json:"student_id" gorm:"uniqueIndex"`
	Student       User                  `json:"student" gorm:"foreignKey:StudentID"`
	Institution   string                `json:"institution"`
	Program       string                `json:"program"`
	AcademicLevel pricing.AcademicLevel `json:"academic_level"`
	AvatarURL     string                `json:"avatar_url"`
	Interests     StringSlice           `json:"interests" gorm:"type:jsonb"`
}
