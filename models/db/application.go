package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type Application struct {
	BaseModel
	JobID          string `gorm:"type:varchar(36);index"`
	CandidateName  string `gorm:"type:varchar(100)"`
	CandidateEmail string `gorm:"type:varchar(255)"`
	Answers        AnswerScores `gorm:"type:jsonb"`
	TotalScore     float64
	MaxScore       float64
	IsNotified     bool `gorm:"index"` // оповещение о новом отклике отправлено
}

// Детализация оценки по вопросам, фиксируется при создании отклика
type AnswerScores []AnswerScore

type AnswerScore struct {
	QuestionID   string      `json:"question_id"`
	QuestionText string      `json:"question_text"`
	Answer       interface{} `json:"answer"`
	Score        float64     `json:"score"`
	MaxScore     float64     `json:"max_score"`
}

func (j AnswerScores) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerScores) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
