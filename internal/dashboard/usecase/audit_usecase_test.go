package usecase_test

import (
	"context"
	"testing"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuditUsecaseTestSuite struct {
	suite.Suite
	f *fixtures
}

func (suite *AuditUsecaseTestSuite) SetupTest() {
	suite.f = newFixtures()
}

func (suite *AuditUsecaseTestSuite) TestRecordAuditEvent_MapsDashboardEvent() {
	// Arrange
	var stored model.AuditEvent
	suite.f.audit.On("Append", mock.Anything, mock.MatchedBy(func(ev model.AuditEvent) bool {
		stored = ev
		return true
	})).Return(nil)

	event := eventbus.NewBasicEventWithSource(eventbus.EventTypeProjectApproval, map[string]interface{}{
		"actorId":    "admin-1",
		"actorEmail": "admin@givehub.example",
		"subjectId":  "p1",
		"approved":   true,
	}, "dashboard_usecase")

	// Act
	err := suite.f.uc.RecordAuditEvent(context.Background(), event)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), eventbus.EventTypeProjectApproval, stored.Action)
	assert.Equal(suite.T(), "admin-1", stored.ActorID)
	assert.Equal(suite.T(), "admin@givehub.example", stored.ActorEmail)
	assert.Equal(suite.T(), "p1", stored.SubjectID)
	assert.Equal(suite.T(), "true", stored.Details["approved"])
	assert.False(suite.T(), stored.OccurredAt.IsZero())
}

func (suite *AuditUsecaseTestSuite) TestRecordAuditEvent_ReadsSessionEventKeys() {
	// Session events carry userId/email instead of actorId/actorEmail.
	var stored model.AuditEvent
	suite.f.audit.On("Append", mock.Anything, mock.MatchedBy(func(ev model.AuditEvent) bool {
		stored = ev
		return true
	})).Return(nil)

	event := eventbus.NewBasicEventWithSource(eventbus.EventTypeUserLoggedIn, map[string]interface{}{
		"userId": "u1",
		"email":  "ada@givehub.example",
		"role":   "Npo",
	}, "session_usecase")

	err := suite.f.uc.RecordAuditEvent(context.Background(), event)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "u1", stored.ActorID)
	assert.Equal(suite.T(), "ada@givehub.example", stored.ActorEmail)
	assert.Equal(suite.T(), "Npo", stored.Details["role"])
	assert.Empty(suite.T(), stored.SubjectID)
}

func (suite *AuditUsecaseTestSuite) TestRecordAuditEvent_AppendFailurePropagates() {
	suite.f.audit.On("Append", mock.Anything, mock.Anything).Return(assert.AnError)

	event := eventbus.NewBasicEvent(eventbus.EventTypeProjectCreated, map[string]interface{}{"subjectId": "p1"})
	err := suite.f.uc.RecordAuditEvent(context.Background(), event)

	assert.Error(suite.T(), err)
}

func (suite *AuditUsecaseTestSuite) TestListAuditEvents_UsesConfiguredPageSize() {
	suite.f.audit.On("List", mock.Anything, 50).Return([]model.AuditEvent{{Action: "project.created"}}, nil)

	events, err := suite.f.uc.ListAuditEvents(context.Background())

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), events, 1)
	suite.f.audit.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) TestSubscribeAuditRecorder_CoversSessionAndDashboardEvents() {
	bus := eventbus.NewEventBus(logger.NewLoggerWithConfig("error", "text"))

	suite.f.uc.SubscribeAuditRecorder(bus)

	assert.Equal(suite.T(), 1, bus.GetSubscriberCount(eventbus.EventTypeUserLoggedIn))
	assert.Equal(suite.T(), 1, bus.GetSubscriberCount(eventbus.EventTypeProjectApproval))
	assert.Equal(suite.T(), 1, bus.GetSubscriberCount(eventbus.EventTypeBankDetailsSaved))
}

func TestAuditUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuditUsecaseTestSuite))
}
