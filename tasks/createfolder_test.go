package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/mocks"
)

type createFolderSuite struct {
	suite.Suite

	client *mocks.Client
}

func (s *createFolderSuite) SetupTest() {
	s.client = &mocks.Client{}
}

func (s *createFolderSuite) TestCreateFolderSuccess() {
	rc, _ := testContext(s.T())

	meta := dropbox.Metadata{
		Tag:         dropbox.TagFolder,
		Name:        "reports",
		PathLower:   "/reports",
		PathDisplay: "/reports",
	}
	s.client.On("CreateFolder", mock.Anything, "/reports", false).Return(&meta, nil)

	task := &CreateFolder{Path: "/reports", Client: s.client}

	out, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)
	s.Equal("reports", out.File.Name)
	s.Equal("folder", out.File.Type)
	s.Nil(out.File.Size)
	s.client.AssertExpectations(s.T())
}

func (s *createFolderSuite) TestCreateFolderConflict() {
	rc, _ := testContext(s.T())

	apiErr := &dropbox.APIError{StatusCode: 409, Summary: "path/conflict/folder/"}
	s.client.On("CreateFolder", mock.Anything, "/reports", false).Return(nil, apiErr)

	task := &CreateFolder{Path: "/reports", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.True(IsConflict(err))
	s.Equal("a file or folder already exists at path: /reports", err.Error())
}

func (s *createFolderSuite) TestCreateFolderAutorename() {
	rc, _ := testContext(s.T())

	meta := dropbox.Metadata{Tag: dropbox.TagFolder, Name: "reports (1)", PathDisplay: "/reports (1)"}
	s.client.On("CreateFolder", mock.Anything, "/reports", true).Return(&meta, nil)

	task := &CreateFolder{Path: "/reports", Autorename: true, Client: s.client}

	out, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)
	s.Equal("reports (1)", out.File.Name)
	s.client.AssertExpectations(s.T())
}

func TestCreateFolderSuite(t *testing.T) {
	suite.Run(t, new(createFolderSuite))
}
