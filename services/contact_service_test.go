package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/repositories/mocks"
)

// ContactServiceTestSuite is a test suite for the contact intake workflow
type ContactServiceTestSuite struct {
	suite.Suite
	service         ContactService
	mockContactRepo *mocks.MockContactRepository
	ctx             context.Context
}

// SetupTest sets up the test suite before each test
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockContactRepo = mocks.NewMockContactRepository(suite.T())
	suite.service = NewContactService(suite.mockContactRepo)
	suite.ctx = context.Background()
}

// TestSubmit_Success stores exactly the submitted fields
func (suite *ContactServiceTestSuite) TestSubmit_Success() {
	form := &models.ContactForm{Name: "Alice", Email: "a@b.com", Message: "Hi"}

	suite.mockContactRepo.EXPECT().
		Create(suite.ctx, mock.MatchedBy(func(msg *models.ContactMessage) bool {
			return msg.Name == "Alice" && msg.Email == "a@b.com" && msg.Message == "Hi"
		})).
		Run(func(_ context.Context, msg *models.ContactMessage) {
			msg.ID = 7
			msg.CreatedAt = time.Now()
		}).
		Return(nil).
		Once()

	// Act
	msg, err := suite.service.Submit(suite.ctx, form)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), msg)
	assert.Equal(suite.T(), int64(7), msg.ID)
	assert.Equal(suite.T(), "Alice", msg.Name)
}

// TestSubmit_MissingField never reaches the repository
func (suite *ContactServiceTestSuite) TestSubmit_MissingField() {
	forms := []*models.ContactForm{
		{Email: "a@b.com", Message: "Hi"},
		{Name: "Alice", Message: "Hi"},
		{Name: "Alice", Email: "a@b.com"},
	}

	for _, form := range forms {
		msg, err := suite.service.Submit(suite.ctx, form)

		assert.Nil(suite.T(), msg)
		var verr *models.ValidationError
		suite.Require().ErrorAs(err, &verr)
		assert.Equal(suite.T(), models.MsgAllFieldsRequired, verr.Message)
	}

	suite.mockContactRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestSubmit_InvalidEmail never reaches the repository
func (suite *ContactServiceTestSuite) TestSubmit_InvalidEmail() {
	for _, email := range []string{"alice.example.com", "alice@example", "a@b@c.com"} {
		msg, err := suite.service.Submit(suite.ctx, &models.ContactForm{Name: "Alice", Email: email, Message: "Hi"})

		assert.Nil(suite.T(), msg)
		var verr *models.ValidationError
		suite.Require().ErrorAs(err, &verr)
		assert.Equal(suite.T(), models.MsgInvalidEmail, verr.Message)
	}

	suite.mockContactRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestSubmit_StorageFailure wraps the repository error
func (suite *ContactServiceTestSuite) TestSubmit_StorageFailure() {
	expectedError := errors.New("database is locked")
	suite.mockContactRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(expectedError).Once()

	msg, err := suite.service.Submit(suite.ctx, &models.ContactForm{Name: "Alice", Email: "a@b.com", Message: "Hi"})

	assert.Nil(suite.T(), msg)
	var serr *StorageError
	suite.Require().ErrorAs(err, &serr)
	assert.Equal(suite.T(), "insert", serr.Op)
	assert.ErrorIs(suite.T(), err, expectedError)
}

// TestListMessages_Success passes the repository order through untouched
func (suite *ContactServiceTestSuite) TestListMessages_Success() {
	stored := []models.ContactMessage{
		{ID: 3, Name: "C"},
		{ID: 2, Name: "B"},
		{ID: 1, Name: "A"},
	}
	suite.mockContactRepo.EXPECT().GetAll(suite.ctx).Return(stored, nil).Once()

	messages, err := suite.service.ListMessages(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, messages)
}

// TestListMessages_StorageFailure wraps the repository error
func (suite *ContactServiceTestSuite) TestListMessages_StorageFailure() {
	expectedError := errors.New("no such table: contact_messages")
	suite.mockContactRepo.EXPECT().GetAll(suite.ctx).Return(nil, expectedError).Once()

	messages, err := suite.service.ListMessages(suite.ctx)

	assert.Nil(suite.T(), messages)
	var serr *StorageError
	suite.Require().ErrorAs(err, &serr)
	assert.Equal(suite.T(), "list", serr.Op)
	assert.Contains(suite.T(), err.Error(), "no such table")
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
