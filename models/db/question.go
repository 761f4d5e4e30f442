package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"job-intake-backend/models"
)

type Question struct {
	BaseModel
	JobID   string              `gorm:"type:varchar(36);index"`
	Text    string              `json:"text"`
	Type    models.QuestionType `gorm:"type:varchar(20)" json:"type"`
	Options StringArray         `gorm:"type:jsonb" json:"options,omitempty"`
	Scoring ScoringConfig       `gorm:"type:jsonb" json:"scoring"`
}

type StringArray []string

func (j StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StringArray) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// Настройка оценки ответа, состав полей зависит от типа вопроса.
// Min/Max указатели, чтобы отличать незаполненную границу от нулевой.
type ScoringConfig struct {
	Points         float64  `json:"points"`
	Keywords       []string `json:"keywords,omitempty"`        // text
	Min            *float64 `json:"min,omitempty"`             // number
	Max            *float64 `json:"max,omitempty"`             // number
	CorrectOption  string   `json:"correct_option,omitempty"`  // single_choice
	CorrectOptions []string `json:"correct_options,omitempty"` // multi_choice
}

func (j ScoringConfig) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ScoringConfig) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
