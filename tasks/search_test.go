package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/mocks"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

type searchSuite struct {
	suite.Suite

	client *mocks.Client
}

func (s *searchSuite) SetupTest() {
	s.client = &mocks.Client{}
}

func (s *searchSuite) TestSearchStoreRoundTrip() {
	rc, store := testContext(s.T())

	s.client.On("Search", mock.Anything, "report", dropbox.SearchOptions{
		Path:           "/docs",
		FileExtensions: []string{"csv"},
	}).Return(&dropbox.Page{
		Entries: []dropbox.Metadata{fileEntry("report.csv")},
		HasMore: false,
	}, nil)

	task := &Search{
		Query:          "report",
		Path:           "/docs",
		FileExtensions: []string{"csv"},
		FetchType:      "STORE",
		Client:         s.client,
	}

	out, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)

	s.Equal(int64(1), out.Size)
	s.Require().NotEmpty(out.URI)

	reader, err := store.Get(context.Background(), out.URI)
	s.Require().NoError(err)
	defer reader.Close()

	rows, err := models.ReadRows(reader)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("report.csv", rows[0].Name)
	s.Equal(int64(1), rc.Metrics().Counter(MetricFilesCount))
}

func (s *searchSuite) TestSearchFollowsCursor() {
	rc, _ := testContext(s.T())

	s.client.On("Search", mock.Anything, "notes", dropbox.SearchOptions{}).
		Return(&dropbox.Page{
			Entries: []dropbox.Metadata{fileEntry("notes-1.txt")},
			Cursor:  "sc1",
			HasMore: true,
		}, nil)
	s.client.On("SearchContinue", mock.Anything, "sc1").
		Return(&dropbox.Page{
			Entries: []dropbox.Metadata{fileEntry("notes-2.txt")},
			HasMore: false,
		}, nil)

	task := &Search{Query: "notes", Client: s.client}

	out, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)
	s.Equal(int64(2), out.Size)
	s.client.AssertExpectations(s.T())
}

func (s *searchSuite) TestSearchQueryRequired() {
	rc, _ := testContext(s.T())

	task := &Search{Query: "   ", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().Error(err)
	s.True(IsValidation(err))
	s.Equal("'query' is required", err.Error())
	s.client.AssertNotCalled(s.T(), "Search")
}

func (s *searchSuite) TestSearchQueryRendered() {
	rc, _ := testContext(s.T(), runner.WithVars(map[string]any{"term": "invoices"}))

	s.client.On("Search", mock.Anything, "invoices", dropbox.SearchOptions{}).
		Return(&dropbox.Page{HasMore: false}, nil)

	task := &Search{Query: "{{.term}}", Client: s.client}

	_, err := task.Run(context.Background(), rc)
	s.Require().NoError(err)
	s.client.AssertExpectations(s.T())
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(searchSuite))
}
