package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusdrop-api/models"
	"campusdrop-api/services"
)

// Rewards for answering a quiz question correctly.
const (
	questionXPReward     = 10
	questionPointsReward = 5
)

type QuestionController struct {
	db      *gorm.DB
	rewards *services.RewardService
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		db:      db,
		rewards: services.NewRewardService(db),
	}
}

// GetNextQuestion returns a question the user has not answered yet, with its
// answer options (correctness withheld by the Answer JSON shape).
func (qc *QuestionController) GetNextQuestion(c *gin.Context) {
	userID := c.GetString("user_id")

	var question models.Question
	err := qc.db.Preload("Answers").
		Where("id NOT IN (?)", qc.db.Model(&models.HasAnswered{}).
			Select("question_id").Where("user_id = ? AND question_id IS NOT NULL", userID)).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "No questions left", "question": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	AnswerID   string `json:"answer_id" binding:"required"`
}

// SubmitAnswer records the user's answer. A correct first answer pays the XP
// and droplet rewards; any further answer to the same question is rejected.
func (qc *QuestionController) SubmitAnswer(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var answer models.Answer
	if err := qc.db.First(&answer, "id = ? AND question_id = ?", req.AnswerID, req.QuestionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		return
	}

	var answered models.HasAnswered
	if err := qc.db.Where("user_id = ? AND question_id = ?", userID, req.QuestionID).
		First(&answered).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Question already answered"})
		return
	}

	err := qc.db.Transaction(func(tx *gorm.DB) error {
		record := models.HasAnswered{
			UserID:     userID,
			QuestionID: &answer.QuestionID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if answer.IsCorrect {
			return qc.rewards.Award(tx, userID, questionXPReward, questionPointsReward, "")
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit answer"})
		return
	}

	response := gin.H{"correct": answer.IsCorrect}
	if answer.IsCorrect {
		response["xp_awarded"] = questionXPReward
		response["points_awarded"] = questionPointsReward
	}
	c.JSON(http.StatusOK, response)
}

type CreateQuestionRequest struct {
	Text    string `json:"text" binding:"required,max=255"`
	Answers []struct {
		Text      string `json:"text" binding:"required,max=255"`
		IsCorrect bool   `json:"is_correct"`
	} `json:"answers" binding:"required,min=2"`
}

// CreateQuestion adds a quiz question with its answers. Staff only.
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hasCorrect := false
	for _, a := range req.Answers {
		if a.IsCorrect {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one answer must be correct"})
		return
	}

	question := models.Question{
		ID:   uuid.New().String(),
		Text: req.Text,
	}

	err := qc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, a := range req.Answers {
			answer := models.Answer{
				ID:         uuid.New().String(),
				Text:       a.Text,
				QuestionID: question.ID,
				IsCorrect:  a.IsCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, question)
}
