package domain

import "time"

// RawIssue is an issue as decoded from a forge API response.
type RawIssue struct {
	Number      int
	Title       string
	Body        string
	Author      string
	HTMLURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PullRequest bool
}

// RawComment is an issue comment as decoded from a forge API response.
type RawComment struct {
	ID        int64
	IssueURL  string
	HTMLURL   string
	Body      string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateQuery selects one page of issue activity from a forge.
type UpdateQuery struct {
	Repo  string
	Since time.Time
	Host  HostProfile
	Page  int
	Limit int
}
