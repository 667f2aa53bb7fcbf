package model

import "time"

// JobStatus is the final status of a CI job
type JobStatus string

const (
	JobStatusSuccess JobStatus = "success"
	JobStatusFailure JobStatus = "failure"
	JobStatusSkipped JobStatus = "skipped"
)

// TestFailure is a single failed test case
type TestFailure struct {
	Suite   string `json:"suite"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// TestReport aggregates the results of a test binary run
type TestReport struct {
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Failures []TestFailure `json:"failures,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Status derives the job status. A run with no tests is a success, matching
// gtest exit behavior.
func (r *TestReport) Status() JobStatus {
	if r.Failed > 0 {
		return JobStatusFailure
	}
	return JobStatusSuccess
}

// JobResult is the final result written by a job
type JobResult struct {
	Name   string      `json:"name"`
	Status JobStatus   `json:"status"`
	Info   string      `json:"info,omitempty"`
	Report *TestReport `json:"report,omitempty"`
}

// IsOK reports whether the job should exit successfully
func (r *JobResult) IsOK() bool {
	return r.Status != JobStatusFailure
}
