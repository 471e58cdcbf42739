package usecase_test

import (
	"context"
	"strings"
	"testing"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProjectUsecaseTestSuite struct {
	suite.Suite
	f *fixtures
}

func (suite *ProjectUsecaseTestSuite) SetupTest() {
	suite.f = newFixtures()
}

func (suite *ProjectUsecaseTestSuite) TestListProjects_WithoutFilterListsAll() {
	suite.f.platform.On("ListProjects", mock.Anything).Return([]model.Project{{ID: "p1"}}, nil)

	projects, err := suite.f.uc.ListProjects(context.Background(), "")

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), projects, 1)
	suite.f.platform.AssertNotCalled(suite.T(), "ListProjectsByCategory", mock.Anything, mock.Anything)
}

func (suite *ProjectUsecaseTestSuite) TestListProjects_WithCategoryFilter() {
	suite.f.platform.On("ListProjectsByCategory", mock.Anything, "c1").Return([]model.Project{{ID: "p1"}}, nil)

	projects, err := suite.f.uc.ListProjects(context.Background(), "c1")

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), projects, 1)
	suite.f.platform.AssertNotCalled(suite.T(), "ListProjects", mock.Anything)
}

func (suite *ProjectUsecaseTestSuite) TestCreateProject_PublishesAuditEvent() {
	// Arrange
	ctx := signedInContext("admin-1", "admin@givehub.example")
	created := &model.Project{ID: "p1", Title: "Well"}
	suite.f.platform.On("CreateProject", mock.Anything, mock.Anything).Return(created, nil)

	// Act
	project, err := suite.f.uc.CreateProject(ctx, model.CreateProjectRequest{Title: "Well"})

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "p1", project.ID)

	events := suite.f.bus.recorded()
	require.Len(suite.T(), events, 1)
	assert.Equal(suite.T(), eventbus.EventTypeProjectCreated, events[0].Type())
	data := events[0].Data().(map[string]interface{})
	assert.Equal(suite.T(), "p1", data["subjectId"])
	assert.Equal(suite.T(), "admin-1", data["actorId"])
}

func (suite *ProjectUsecaseTestSuite) TestCreateProject_NoEventOnFailure() {
	suite.f.platform.On("CreateProject", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := suite.f.uc.CreateProject(context.Background(), model.CreateProjectRequest{})

	require.Error(suite.T(), err)
	assert.Empty(suite.T(), suite.f.bus.recorded())
}

func (suite *ProjectUsecaseTestSuite) TestUpdateProject_RequiresID() {
	_, err := suite.f.uc.UpdateProject(context.Background(), "", model.UpdateProjectRequest{})

	require.Error(suite.T(), err)
	suite.f.platform.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectUsecaseTestSuite) TestDeleteProject_PublishesAuditEvent() {
	ctx := signedInContext("admin-1", "admin@givehub.example")
	suite.f.platform.On("DeleteProject", mock.Anything, "p1").Return(nil)

	err := suite.f.uc.DeleteProject(ctx, "p1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{eventbus.EventTypeProjectDeleted}, suite.f.bus.recordedTypes())
}

func (suite *ProjectUsecaseTestSuite) TestSetProjectApproval_RecordsFlagInEvent() {
	ctx := signedInContext("admin-1", "admin@givehub.example")
	suite.f.platform.On("SetProjectApproval", mock.Anything, "p1", true).Return(nil)

	err := suite.f.uc.SetProjectApproval(ctx, "p1", true)

	require.NoError(suite.T(), err)
	events := suite.f.bus.recorded()
	require.Len(suite.T(), events, 1)
	assert.Equal(suite.T(), eventbus.EventTypeProjectApproval, events[0].Type())
	data := events[0].Data().(map[string]interface{})
	assert.Equal(suite.T(), true, data["approved"])
}

func (suite *ProjectUsecaseTestSuite) TestAttachProjectMedia_RejectsEmptyFileList() {
	_, err := suite.f.uc.AttachProjectMedia(context.Background(), "p1", nil)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "no files")
	suite.f.platform.AssertNotCalled(suite.T(), "AttachProjectMedia", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectUsecaseTestSuite) TestAttachProjectMedia_PublishesAuditEvent() {
	ctx := signedInContext("npo-1", "npo@givehub.example")
	files := []model.FileUpload{{FileName: "a.png", Content: strings.NewReader("PNG")}}
	updated := &model.Project{ID: "p1", Media: []model.ProjectMedia{{ID: "m1"}}}
	suite.f.platform.On("AttachProjectMedia", mock.Anything, "p1", files).Return(updated, nil)

	project, err := suite.f.uc.AttachProjectMedia(ctx, "p1", files)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), project.Media, 1)
	assert.Equal(suite.T(), []string{eventbus.EventTypeProjectMediaSet}, suite.f.bus.recordedTypes())
}

func (suite *ProjectUsecaseTestSuite) TestRemoveProjectMedia_PublishesAuditEvent() {
	ctx := signedInContext("npo-1", "npo@givehub.example")
	suite.f.platform.On("RemoveProjectMedia", mock.Anything, "p1", "m1").Return(nil)

	err := suite.f.uc.RemoveProjectMedia(ctx, "p1", "m1")

	require.NoError(suite.T(), err)
	events := suite.f.bus.recorded()
	require.Len(suite.T(), events, 1)
	data := events[0].Data().(map[string]interface{})
	assert.Equal(suite.T(), "m1", data["mediaId"])
}

func TestProjectUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectUsecaseTestSuite))
}
