package models

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
)

type dropboxFileSuite struct {
	suite.Suite
}

func (s *dropboxFileSuite) TestFromMetadataFile() {
	modified := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	meta := &dropbox.Metadata{
		Tag:            dropbox.TagFile,
		Name:           "Report.CSV",
		PathLower:      "/docs/report.csv",
		PathDisplay:    "/Docs/Report.CSV",
		Size:           1024,
		ClientModified: modified,
		ServerModified: modified.Add(time.Hour),
	}

	file := FromMetadata(meta)

	s.Equal("Report.CSV", file.Name)
	s.Equal("/docs/report.csv", file.ID)
	s.Equal("/Docs/Report.CSV", file.Path)
	s.Equal(TypeFile, file.Type)
	s.Require().NotNil(file.Size)
	s.Equal(uint64(1024), *file.Size)
	s.Require().NotNil(file.Modified)
	// client_modified wins over server_modified when both are present
	s.Equal(modified, *file.Modified)
}

func (s *dropboxFileSuite) TestFromMetadataFileServerModifiedFallback() {
	serverModified := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	meta := &dropbox.Metadata{
		Tag:            dropbox.TagFile,
		Name:           "a.txt",
		ServerModified: serverModified,
	}

	file := FromMetadata(meta)
	s.Require().NotNil(file.Modified)
	s.Equal(serverModified, *file.Modified)
}

func (s *dropboxFileSuite) TestFromMetadataFolder() {
	meta := &dropbox.Metadata{
		Tag:         dropbox.TagFolder,
		Name:        "docs",
		PathLower:   "/docs",
		PathDisplay: "/Docs",
	}

	file := FromMetadata(meta)

	s.Equal(TypeFolder, file.Type)
	s.Nil(file.Size)
	s.Nil(file.Modified)
}

func (s *dropboxFileSuite) TestRowRoundTrip() {
	size := uint64(7)
	modified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []DropboxFile{
		{Name: "a.txt", ID: "/a.txt", Path: "/a.txt", Type: TypeFile, Size: &size, Modified: &modified},
		{Name: "docs", ID: "/docs", Path: "/docs", Type: TypeFolder},
	}

	var buf bytes.Buffer
	for _, row := range rows {
		s.Require().NoError(WriteRow(&buf, row))
	}

	decoded, err := ReadRows(&buf)
	s.Require().NoError(err)
	s.Equal(rows, decoded)
}

func (s *dropboxFileSuite) TestReadRowsSkipsBlankLines() {
	input := bytes.NewBufferString(`{"name":"a.txt","id":"/a.txt","path":"/a.txt","type":"file"}

{"name":"b.txt","id":"/b.txt","path":"/b.txt","type":"file"}
`)

	rows, err := ReadRows(input)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("a.txt", rows[0].Name)
	s.Equal("b.txt", rows[1].Name)
}

func (s *dropboxFileSuite) TestReadRowsRejectsMalformedLine() {
	input := bytes.NewBufferString("{not json}\n")

	_, err := ReadRows(input)
	s.Require().Error(err)
}

func TestDropboxFileSuite(t *testing.T) {
	suite.Run(t, new(dropboxFileSuite))
}
