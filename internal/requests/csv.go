package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidCSV = errors.New("invalid process file")

// LoadJobs reads rows of "id,burst,arrival[,priority]". Blank lines and
// lines starting with '#' are skipped.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidCSV, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("%w: line %d: want 3 or 4 fields, got %d", ErrInvalidCSV, i+1, len(row))
		}
		job := Job{ProcessId: strings.TrimSpace(row[0])}
		if job.BurstTime, err = parseField(row[1], "burst", i); err != nil {
			return nil, err
		}
		if job.ArrivalTime, err = parseField(row[2], "arrival", i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if job.Priority, err = parseField(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseField(s, name string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s must be a number: %v", ErrInvalidCSV, line+1, name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: line %d: %s must be finite, got %s", ErrInvalidCSV, line+1, name, strings.TrimSpace(s))
	}
	return v, nil
}
