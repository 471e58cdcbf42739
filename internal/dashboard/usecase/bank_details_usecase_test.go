package usecase_test

import (
	"context"
	"testing"

	"givehub-admin/internal/dashboard/domain/model"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BankDetailsUsecaseTestSuite struct {
	suite.Suite
	f *fixtures
}

func (suite *BankDetailsUsecaseTestSuite) SetupTest() {
	suite.f = newFixtures()
}

func (suite *BankDetailsUsecaseTestSuite) TestGetBankDetails_UsesSignedInUser() {
	ctx := signedInContext("u1", "ada@givehub.example")
	stored := model.BankDetails{AccountHolder: "Ada Lovelace", IBAN: "DE89"}
	suite.f.bank.On("Get", mock.Anything, "u1").Return(stored, nil)

	details, err := suite.f.uc.GetBankDetails(ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, details)
}

func (suite *BankDetailsUsecaseTestSuite) TestGetBankDetails_WithoutUserFails() {
	_, err := suite.f.uc.GetBankDetails(context.Background())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	suite.f.bank.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *BankDetailsUsecaseTestSuite) TestSaveBankDetails_StoresAndPublishes() {
	ctx := signedInContext("u1", "ada@givehub.example")
	details := model.BankDetails{AccountHolder: "Ada Lovelace", BankName: "First Example Bank"}
	suite.f.bank.On("Put", mock.Anything, "u1", details).Return(nil)

	err := suite.f.uc.SaveBankDetails(ctx, details)

	require.NoError(suite.T(), err)
	suite.f.bank.AssertExpectations(suite.T())
	assert.Equal(suite.T(), []string{eventbus.EventTypeBankDetailsSaved}, suite.f.bus.recordedTypes())
}

func (suite *BankDetailsUsecaseTestSuite) TestSaveBankDetails_NoEventOnStoreFailure() {
	ctx := signedInContext("u1", "ada@givehub.example")
	suite.f.bank.On("Put", mock.Anything, "u1", mock.Anything).Return(assert.AnError)

	err := suite.f.uc.SaveBankDetails(ctx, model.BankDetails{})

	require.Error(suite.T(), err)
	assert.Empty(suite.T(), suite.f.bus.recorded())
}

func TestBankDetailsUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(BankDetailsUsecaseTestSuite))
}
