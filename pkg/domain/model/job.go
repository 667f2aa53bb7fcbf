package model

import "strings"

// JobInfo identifies the current CI run. It is built once per process and
// never modified afterwards.
type JobInfo struct {
	PRNumber   int    // Pull request number, 0 when the run is not a PR run
	Repository string // Repository full name (owner/name)
	JobName    string // CI job name, e.g. "Build (amd_release)"
	Branch     string // Git branch of the run
}

// IsPullRequest reports whether the run belongs to a pull request
func (j *JobInfo) IsPullRequest() bool {
	return j.PRNumber > 0
}

// Owner returns the owner part of the repository full name
func (j *JobInfo) Owner() string {
	owner, _, _ := strings.Cut(j.Repository, "/")
	return owner
}

// Name returns the name part of the repository full name
func (j *JobInfo) Name() string {
	_, name, _ := strings.Cut(j.Repository, "/")
	return name
}
