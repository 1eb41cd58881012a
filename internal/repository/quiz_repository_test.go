package repository

import (
	"fmt"
	"testing"

	"github.com/areto-app/areto/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Quiz{}))
	return db
}

func sampleQuiz(title, createdBy string) *model.Quiz {
	return &model.Quiz{
		Title:     title,
		Icon:      model.DefaultIcon,
		CreatedBy: createdBy,
		QuizQuestions: []model.Question{
			{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"},
			{Question: "3*3?", Options: []string{"6", "7", "8", "9"}, Answer: "9"},
		},
	}
}

func TestInsertAssignsID(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := sampleQuiz("Math", "user-1")
	require.NoError(t, repo.Insert(quiz))
	assert.NotZero(t, quiz.ID)
}

func TestFindByIDRoundTripsQuestions(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := sampleQuiz("Math", "user-1")
	require.NoError(t, repo.Insert(quiz))

	found, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", found.Title)
	require.Len(t, found.QuizQuestions, 2)
	assert.Equal(t, []string{"3", "4", "5", "6"}, found.QuizQuestions[0].Options)
	assert.Equal(t, "4", found.QuizQuestions[0].Answer)
}

func TestFindByIDUnknownReturnsNotFound(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	_, err := repo.FindByID(12345)
	assert.ErrorIs(t, err, model.ErrQuizNotFound)
}

func TestFindAllReturnsSummaryProjection(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := sampleQuiz("Math", "user-1")
	limit := 30
	quiz.TimeLimit = &limit
	require.NoError(t, repo.Insert(quiz))

	quizzes, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, quizzes, 1)

	got := quizzes[0]
	assert.Equal(t, quiz.ID, got.ID)
	assert.Equal(t, "Math", got.Title)
	assert.Equal(t, "user-1", got.CreatedBy)
	assert.Len(t, got.QuizQuestions, 2)
	// timeLimit is outside the projection's field allowlist.
	assert.Nil(t, got.TimeLimit)
}

func TestSavePersistsStatistics(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := sampleQuiz("Math", "user-1")
	require.NoError(t, repo.Insert(quiz))

	quiz.TotalPlays = 3
	quiz.AverageSuccessRate = 50
	require.NoError(t, repo.Save(quiz))

	found, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.TotalPlays)
	assert.Equal(t, float64(50), found.AverageSuccessRate)
}

func TestDeleteByIDIsPermanent(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := sampleQuiz("Math", "user-1")
	require.NoError(t, repo.Insert(quiz))

	require.NoError(t, repo.DeleteByID(quiz.ID))

	_, err := repo.FindByID(quiz.ID)
	assert.ErrorIs(t, err, model.ErrQuizNotFound)
}

func TestDeleteByIDUnknownReturnsNotFound(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))
	assert.ErrorIs(t, repo.DeleteByID(99), model.ErrQuizNotFound)
}
