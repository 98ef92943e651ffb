package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/mocks"
)

type moveSuite struct {
	suite.Suite

	client *mocks.Client
}

func (s *moveSuite) SetupTest() {
	s.client = &mocks.Client{}
}

func (s *moveSuite) TestMoveSuccess() {
	rc, _ := testContext(s.T())

	meta := fileEntry("file.txt")
	meta.PathLower = "/dest/file.txt"
	meta.PathDisplay = "/dest/file.txt"
	s.client.On("Move", mock.Anything, "/src/file.txt", "/dest/file.txt",
		dropbox.RelocationOptions{Autorename: true}).Return(&meta, nil)

	task := &Move{
		From:       "/src/file.txt",
		To:         "/dest/file.txt",
		Autorename: true,
		Client:     s.client,
	}

	out, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)

	s.Equal("file.txt", out.File.Name)
	s.Equal("/dest/file.txt", out.File.ID)
	s.Equal("/dest/file.txt", out.File.Path)
	s.client.AssertExpectations(s.T())
}

func (s *moveSuite) TestMoveFromStorageReference() {
	rc, store := testContext(s.T())
	uri := seedBlob(s.T(), store, "/src/report.csv\n")

	meta := fileEntry("report.csv")
	s.client.On("Move", mock.Anything, "/src/report.csv", "/archive/report.csv",
		dropbox.RelocationOptions{}).Return(&meta, nil)

	task := &Move{From: uri, To: "/archive/report.csv", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)
	s.client.AssertExpectations(s.T())
}

func (s *moveSuite) TestMoveSourceNotFound() {
	rc, _ := testContext(s.T())

	apiErr := &dropbox.APIError{StatusCode: 409, Summary: "from_lookup/not_found/"}
	s.client.On("Move", mock.Anything, "/missing.txt", "/dest.txt",
		dropbox.RelocationOptions{}).Return(nil, apiErr)

	task := &Move{From: "/missing.txt", To: "/dest.txt", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.True(IsNotFound(err))
	s.Equal("source path not found: /missing.txt", err.Error())
}

func (s *moveSuite) TestMoveDestinationConflict() {
	rc, _ := testContext(s.T())

	apiErr := &dropbox.APIError{StatusCode: 409, Summary: "to/conflict/file/"}
	s.client.On("Move", mock.Anything, "/src.txt", "/taken.txt",
		dropbox.RelocationOptions{}).Return(nil, apiErr)

	task := &Move{From: "/src.txt", To: "/taken.txt", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.True(IsConflict(err))
	s.Equal("a file or folder already exists at the destination path: /taken.txt", err.Error())
}

func (s *moveSuite) TestMoveInvalidToken() {
	rc, _ := testContext(s.T())

	apiErr := &dropbox.APIError{StatusCode: 401, Summary: "invalid_access_token/"}
	s.client.On("Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apiErr)

	task := &Move{From: "/a.txt", To: "/b.txt", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.Equal(KindAuthentication, kindOf(err))
	s.Equal(msgInvalidToken, err.Error())
}

func (s *moveSuite) TestMoveRateLimited() {
	rc, _ := testContext(s.T())

	apiErr := &dropbox.APIError{StatusCode: 429, Summary: "too_many_requests/", RetryAfter: 3}
	s.client.On("Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apiErr)

	task := &Move{From: "/a.txt", To: "/b.txt", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.Equal(KindRateLimit, kindOf(err))
	s.Equal(msgRateLimited, err.Error())
}

func (s *moveSuite) TestMoveValidatesPathsBeforeCalling() {
	rc, _ := testContext(s.T())

	task := &Move{From: "no-slash.txt", To: "/dest.txt", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.True(IsValidation(err))
	s.Contains(err.Error(), "'from' path must start with '/'")
	s.client.AssertNotCalled(s.T(), "Move")
}

func TestMoveSuite(t *testing.T) {
	suite.Run(t, new(moveSuite))
}
