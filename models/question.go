package models

import "time"

type Question struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Text      string    `json:"text" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`

	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type Answer struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	Text       string `json:"text" gorm:"not null;size:255"`
	QuestionID string `json:"question_id" gorm:"not null;size:191"`
	IsCorrect  bool   `json:"-" gorm:"not null"`

	Question Question `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// HasAnswered marks a question as answered by a user. The question reference
// survives question deletion (SET NULL) so the answered count stays honest.
type HasAnswered struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_has_answered_user_question"`
	QuestionID *string   `json:"question_id" gorm:"size:191;uniqueIndex:uk_has_answered_user_question"`
	CreatedAt  time.Time `json:"created_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Question *Question `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:SET NULL"`
}
