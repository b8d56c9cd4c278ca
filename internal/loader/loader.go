// Package loader reads process lists from CSV or YAML files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpusched/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// LoadFile reads a process file, choosing the format by extension.
func LoadFile(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	}
	return requests.ScheduleRequests{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadCSV parses rows of id,arrival,burst. A leading header row is skipped.
// Blank fields are left unset so the validator can report them.
func LoadCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		arrival, err := parseField(row[1])
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("row %d: arrival: %w", i+1, err)
		}
		burst, err := parseField(row[2])
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("row %d: burst: %w", i+1, err)
		}
		jobs = append(jobs, requests.Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return requests.ScheduleRequests{Jobs: jobs}, nil
}

// LoadYAML parses a document of the form
//
//	processes:
//	  - {id: P1, arrival: 0, burst: 3}
func LoadYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return requests.ScheduleRequests{}, fmt.Errorf("reading YAML: %w", err)
	}
	return request, nil
}

func isHeader(row []string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(row[1]))
	return err != nil && strings.EqualFold(strings.TrimSpace(row[0]), "id")
}

func parseField(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
