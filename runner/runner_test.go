package runner

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type runnerSuite struct {
	suite.Suite
}

func (s *runnerSuite) TestRenderPlainStringPassesThrough() {
	rc := NewContext()

	out, err := rc.Render("/reports/q1.csv")
	s.Require().NoError(err)
	s.Equal("/reports/q1.csv", out)
}

func (s *runnerSuite) TestRenderExpandsVars() {
	rc := NewContext(WithVars(map[string]any{"dir": "/reports", "year": 2025}))

	out, err := rc.Render("{{ .dir }}/q1-{{ .year }}.csv")
	s.Require().NoError(err)
	s.Equal("/reports/q1-2025.csv", out)
}

func (s *runnerSuite) TestRenderUndefinedVarFails() {
	rc := NewContext(WithVars(map[string]any{}))

	_, err := rc.Render("{{ .missing }}/file.csv")
	s.Require().Error(err)
}

func (s *runnerSuite) TestRenderInvalidTemplateFails() {
	rc := NewContext()

	_, err := rc.Render("{{ .unclosed")
	s.Require().Error(err)
}

func (s *runnerSuite) TestStorageErrorsWhenUnset() {
	rc := NewContext()

	_, err := rc.Storage()
	s.Require().Error(err)
	s.Contains(err.Error(), "internal storage is not configured")
}

func (s *runnerSuite) TestCountersAccumulate() {
	rc := NewContext()

	rc.Counter("files.count", 3)
	rc.Counter("files.count", 2)

	s.Equal(int64(5), rc.Metrics().Counter("files.count"))
	s.Equal(int64(0), rc.Metrics().Counter("other"))
}

func (s *runnerSuite) TestTempFileUsesWorkingDir() {
	dir := s.T().TempDir()
	rc := NewContext(WithWorkingDir(dir))

	f, err := rc.TempFile()
	s.Require().NoError(err)
	defer f.Close()

	s.Contains(f.Name(), dir)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(runnerSuite))
}
