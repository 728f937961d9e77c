package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Comida"}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	cat, err := suite.service.CreateCategory(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(cat)
	suite.NotEmpty(cat.CategoryID)
	suite.Equal("Comida", cat.Name)
	suite.WithinDuration(time.Now(), cat.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_EmptyName() {
	ctx := context.Background()

	cat, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "  "})

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestGetCategoryByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	cat, err := suite.service.GetCategoryByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_Success() {
	ctx := context.Background()
	expected := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Comida"},
		{CategoryID: uuid.NewString(), Name: "Transporte"},
	}

	suite.mockRepo.On("ListCategories", ctx).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Category{CategoryID: testID, Name: "Comida"}

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(cat domain.Category) bool {
		return cat.CategoryID == testID && cat.Name == "Restaurantes"
	})).Return(nil).Once()

	cat, err := suite.service.UpdateCategory(ctx, testID, dto.UpdateCategoryRequest{Name: "Restaurantes"})

	suite.Require().NoError(err)
	suite.Equal("Restaurantes", cat.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	cat, err := suite.service.UpdateCategory(ctx, testID, dto.UpdateCategoryRequest{Name: "Otros"})

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteCategory", ctx, testID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_RepoError() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteCategory", ctx, testID).Return(expectedErr).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
