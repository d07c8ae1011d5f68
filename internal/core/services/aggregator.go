package services

import (
	"context"
	"fmt"
	"iter"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// Comment titles.
const (
	placeholderTitleFormat = "Comment on issue #%d"
	commentTitlePrefix     = "Comment on: "
)

// Aggregator turns one page of forge issues and comments into an ordered
// sequence of update entries.
type Aggregator struct {
	trackers driven.TrackerFactory
}

// NewAggregator creates an aggregator reading from trackers.
func NewAggregator(trackers driven.TrackerFactory) *Aggregator {
	return &Aggregator{trackers: trackers}
}

// Aggregate returns the update entries of q.
//
// Each issue opened since q.Since is followed by its comments in upstream
// order. Comments whose issue is not part of the page come last, keeping
// their placeholder title. Pull requests and their comments are skipped.
//
// Both upstream collections are fetched when iteration starts. A fetch
// failure yields a single error and no entries.
func (a *Aggregator) Aggregate(ctx context.Context, q domain.UpdateQuery) iter.Seq2[domain.UpdateEntry, error] {
	return func(yield func(domain.UpdateEntry, error) bool) {
		logger.Section("Aggregate " + q.Repo)

		issues, comments, err := a.fetch(ctx, q)
		if err != nil {
			yield(domain.UpdateEntry{}, err)
			return
		}
		logger.Debug("Fetched %d issues and %d comments from %s", len(issues), len(comments), q.Host.APIHost)

		pending := newPendingComments()
		for _, c := range comments {
			number, ok := parentIssueNumber(c)
			if !ok {
				logger.Debug("Skipping comment %d (issue url %q)", c.ID, c.IssueURL)
				continue
			}
			pending.add(number, commentEntry(c, number))
		}

		since := domain.NormalizeTime(q.Since)
		for _, issue := range issues {
			if isPullRequest(issue) {
				continue
			}
			// An old issue shows up as updated when it receives a
			// comment; only issues opened since q.Since are new.
			if domain.NormalizeTime(issue.CreatedAt).Before(since) {
				continue
			}
			if !yield(issueEntry(issue), nil) {
				return
			}
			for _, c := range pending.take(issue.Number) {
				c.Title = commentTitlePrefix + issue.Title
				if !yield(c, nil) {
					return
				}
			}
		}

		for _, c := range pending.rest() {
			if !yield(c, nil) {
				return
			}
		}
	}
}

// fetch requests both collections concurrently and waits for both.
func (a *Aggregator) fetch(
	ctx context.Context, q domain.UpdateQuery,
) ([]domain.RawIssue, []domain.RawComment, error) {
	tracker, err := a.trackers.Tracker(q.Host)
	if err != nil {
		return nil, nil, fmt.Errorf("create tracker: %w", err)
	}

	var (
		wg                    sync.WaitGroup
		issues                []domain.RawIssue
		comments              []domain.RawComment
		issuesErr, commentErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		issues, issuesErr = tracker.ListIssues(ctx, q)
	}()
	go func() {
		defer wg.Done()
		comments, commentErr = tracker.ListComments(ctx, q)
	}()
	wg.Wait()

	// The issues error wins when both calls fail.
	if issuesErr != nil {
		return nil, nil, issuesErr
	}
	if commentErr != nil {
		return nil, nil, commentErr
	}
	return issues, comments, nil
}

// parentIssueNumber extracts the issue number from a comment's issue URL.
// Comments on pull requests and malformed URLs are rejected.
func parentIssueNumber(c domain.RawComment) (int, bool) {
	if c.IssueURL == "" {
		return 0, false
	}
	if strings.Contains(c.IssueURL, "/pulls/") || strings.Contains(c.HTMLURL, "/pull/") {
		return 0, false
	}
	number, err := strconv.Atoi(path.Base(strings.TrimRight(c.IssueURL, "/")))
	if err != nil || number <= 0 {
		return 0, false
	}
	return number, true
}

func isPullRequest(issue domain.RawIssue) bool {
	return issue.PullRequest ||
		strings.Contains(issue.HTMLURL, "/pull/") ||
		strings.Contains(issue.HTMLURL, "/pulls/")
}

func issueEntry(issue domain.RawIssue) domain.UpdateEntry {
	return domain.UpdateEntry{
		Kind:      domain.EntryIssue,
		ID:        domain.EntryID(domain.EntryIssue, int64(issue.Number)),
		Link:      issue.HTMLURL,
		Title:     issue.Title,
		Content:   issue.Body,
		Author:    issue.Author,
		Published: domain.NormalizeTime(issue.CreatedAt),
		Updated:   domain.NormalizeTime(issue.UpdatedAt),
	}
}

func commentEntry(c domain.RawComment, issueNumber int) domain.UpdateEntry {
	return domain.UpdateEntry{
		Kind:      domain.EntryComment,
		ID:        domain.EntryID(domain.EntryComment, c.ID),
		Link:      c.HTMLURL,
		Title:     fmt.Sprintf(placeholderTitleFormat, issueNumber),
		Content:   c.Body,
		Author:    c.Author,
		Published: domain.NormalizeTime(c.CreatedAt),
		Updated:   domain.NormalizeTime(c.UpdatedAt),
	}
}

// pendingComments groups comment entries by issue number. Groups keep
// insertion order, and so does the order in which groups were first seen.
type pendingComments struct {
	order   []int
	byIssue map[int][]domain.UpdateEntry
}

func newPendingComments() *pendingComments {
	return &pendingComments{byIssue: make(map[int][]domain.UpdateEntry)}
}

func (p *pendingComments) add(issue int, e domain.UpdateEntry) {
	if _, ok := p.byIssue[issue]; !ok {
		p.order = append(p.order, issue)
	}
	p.byIssue[issue] = append(p.byIssue[issue], e)
}

// take removes and returns the comments of issue.
func (p *pendingComments) take(issue int) []domain.UpdateEntry {
	entries := p.byIssue[issue]
	delete(p.byIssue, issue)
	return entries
}

// rest returns the comments not taken yet.
func (p *pendingComments) rest() []domain.UpdateEntry {
	var out []domain.UpdateEntry
	for _, issue := range p.order {
		out = append(out, p.byIssue[issue]...)
	}
	return out
}
