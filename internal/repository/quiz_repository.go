package repository

import (
	"errors"

	"github.com/areto-app/areto/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Insert(quiz *model.Quiz) error
	FindAll() ([]model.Quiz, error)
	FindByID(id uint) (*model.Quiz, error)
	Save(quiz *model.Quiz) error
	DeleteByID(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Insert(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

// FindAll returns every quiz projected to the summary field allowlist.
func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Model(&model.Quiz{}).
		Select("id", "title", "icon", "quiz_questions", "total_plays", "average_success_rate", "created_at", "created_by").
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Save(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&model.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrQuizNotFound
	}
	return nil
}
