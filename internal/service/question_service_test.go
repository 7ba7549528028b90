package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	errs "examdesk/internal/errors"
	"examdesk/internal/model"
)

func TestQuestionService_List_EnrichesPaperYear(t *testing.T) {
	questions := new(MockQuestionRepository)
	papers := new(MockPaperRepository)
	svc := NewQuestionService(questions, papers, nil)

	paperID := uuid.New()
	questions.On("List", mock.Anything).Return([]model.Question{
		{ID: uuid.New(), Number: 1, PaperID: paperID},
	}, nil)
	papers.On("FindByID", mock.Anything, paperID).Return(&model.Paper{ID: paperID, Year: "2024"}, nil)

	listings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 1, listings[0].Number)
	assert.Equal(t, "2024", listings[0].PaperYear)
}

func TestQuestionService_Create_DuplicateNumber(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuestionService(questions, new(MockPaperRepository), nil)

	existing := &model.Question{ID: uuid.New(), Number: 7}
	questions.On("FindByNumber", mock.Anything, 7).Return(existing, nil)

	_, err := svc.Create(context.Background(), 7, uuid.New(), "text", "answer")
	assert.ErrorIs(t, err, errs.ErrDuplicate)
	assert.EqualError(t, err, "Duplicate question number")
}

func TestQuestionService_Update_NumberCollision(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuestionService(questions, new(MockPaperRepository), nil)

	id := uuid.New()
	questions.On("FindByID", mock.Anything, id).Return(&model.Question{ID: id, Number: 3}, nil)
	other := &model.Question{ID: uuid.New(), Number: 7}
	questions.On("FindByNumber", mock.Anything, 7).Return(other, nil)

	_, err := svc.Update(context.Background(), id, 7, uuid.New(), "text", "answer")
	assert.ErrorIs(t, err, errs.ErrDuplicate)
	assert.EqualError(t, err, "Duplicate question")
}

func TestQuestionService_Update_KeepOwnNumber(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuestionService(questions, new(MockPaperRepository), nil)

	id := uuid.New()
	paperID := uuid.New()
	question := &model.Question{ID: id, Number: 3, PaperID: paperID}
	questions.On("FindByID", mock.Anything, id).Return(question, nil)
	questions.On("FindByNumber", mock.Anything, 3).Return(question, nil)
	questions.On("Save", mock.Anything, question).Return(nil)

	updated, err := svc.Update(context.Background(), id, 3, paperID, "new text", "new answer")
	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Text)
	assert.Equal(t, "new answer", updated.Answer)
}

// Questions have no dependents, so delete only needs the record to exist.
func TestQuestionService_Delete_Success(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuestionService(questions, new(MockPaperRepository), nil)

	id := uuid.New()
	question := &model.Question{ID: id, Number: 3}
	questions.On("FindByID", mock.Anything, id).Return(question, nil)
	questions.On("Delete", mock.Anything, id).Return(nil)

	deleted, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted.Number)
}

func TestQuestionService_Delete_NotFound(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewQuestionService(questions, new(MockPaperRepository), nil)

	id := uuid.New()
	questions.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.EqualError(t, err, "question not found")
}
