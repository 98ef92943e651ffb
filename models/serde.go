package models

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// WriteRow serializes one DropboxFile as a single JSON line. Stored result
// files are sequences of such lines, readable back in order with ReadRows.
func WriteRow(w io.Writer, file DropboxFile) error {
	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal row failed: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write row failed: %w", err)
	}
	return nil
}

// ReadRows decodes every JSON line written by WriteRow, preserving order.
func ReadRows(r io.Reader) ([]DropboxFile, error) {
	var rows []DropboxFile

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var row DropboxFile
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("decode row failed: %w", err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rows failed: %w", err)
	}

	return rows, nil
}
