package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/mocks"
	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/tasks"
)

type pluginSuite struct {
	suite.Suite
}

func (s *pluginSuite) TestTypesSortedAndComplete() {
	types := Types()

	s.Equal([]string{
		TypeCopy,
		TypeCreateFolder,
		TypeDelete,
		TypeDownload,
		TypeGetMetadata,
		TypeList,
		TypeMove,
		TypeSearch,
		TypeUpload,
	}, types)
}

func (s *pluginSuite) TestNewReturnsFreshTask() {
	task, err := New(TypeMove)
	s.Require().NoError(err)
	s.IsType(&tasks.Move{}, task)

	other, err := New(TypeMove)
	s.Require().NoError(err)
	s.NotSame(task, other)
}

func (s *pluginSuite) TestNewUnknownType() {
	_, err := New("dropbox.files.Rename")
	s.Require().Error(err)
	s.Contains(err.Error(), "unknown task type")
}

func (s *pluginSuite) TestRunDispatchesByType() {
	client := &mocks.Client{}
	meta := &dropbox.Metadata{Tag: dropbox.TagFile, Name: "a.txt", PathLower: "/a.txt", PathDisplay: "/a.txt"}
	client.On("Delete", mock.Anything, "/a.txt").Return(meta, nil)

	task := &tasks.Delete{From: "/a.txt", Client: client}

	out, err := Run(context.Background(), runner.NewContext(), task)
	s.Require().NoError(err)

	deleted, ok := out.(*tasks.DeleteOutput)
	s.Require().True(ok)
	s.Equal("a.txt", deleted.File.Name)
}

func (s *pluginSuite) TestRunRejectsForeignTask() {
	_, err := Run(context.Background(), runner.NewContext(), struct{}{})
	s.Require().Error(err)
	s.Contains(err.Error(), "not a task of this plugin")
}

func TestPluginSuite(t *testing.T) {
	suite.Run(t, new(pluginSuite))
}
