package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func rawIssue(number int, title string, created time.Time) domain.RawIssue {
	return domain.RawIssue{
		Number:    number,
		Title:     title,
		Body:      "body of " + title,
		Author:    "octocat",
		HTMLURL:   "https://github.com/octo/hello/issues/" + strconv.Itoa(number),
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
}

func rawComment(id int64, issue int, created time.Time) domain.RawComment {
	return domain.RawComment{
		ID:        id,
		IssueURL:  "https://api.github.com/repos/octo/hello/issues/" + strconv.Itoa(issue),
		HTMLURL:   "https://github.com/octo/hello/issues/" + strconv.Itoa(issue) + "#issuecomment-" + strconv.FormatInt(id, 10),
		Body:      "comment",
		Author:    "hubot",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testQuery(since time.Time) domain.UpdateQuery {
	return domain.UpdateQuery{
		Repo:  "octo/hello",
		Since: since,
		Host:  domain.DefaultHostProfiles()[domain.HostTypeGitHub],
		Page:  1,
		Limit: 50,
	}
}

func collect(t *testing.T, a *Aggregator, q domain.UpdateQuery) ([]domain.UpdateEntry, error) {
	t.Helper()
	var entries []domain.UpdateEntry
	for e, err := range a.Aggregate(context.Background(), q) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func newTestAggregator(tracker *mockTracker) *Aggregator {
	return NewAggregator(&mockTrackerFactory{tracker: tracker})
}

func TestAggregate_IssueWithComment(t *testing.T) {
	tracker := &mockTracker{
		issues:   []domain.RawIssue{rawIssue(5, "Bug", day(10))},
		comments: []domain.RawComment{rawComment(1, 5, day(11))},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.EntryIssue, entries[0].Kind)
	assert.Equal(t, "Bug", entries[0].Title)
	assert.Equal(t, domain.EntryID(domain.EntryIssue, 5), entries[0].ID)
	assert.Equal(t, day(10), entries[0].Published)

	assert.Equal(t, domain.EntryComment, entries[1].Kind)
	assert.Equal(t, "Comment on: Bug", entries[1].Title)
	assert.Equal(t, domain.EntryID(domain.EntryComment, 1), entries[1].ID)
}

func TestAggregate_OldIssueExcluded(t *testing.T) {
	issue := rawIssue(5, "Bug", day(10))
	issue.UpdatedAt = day(20)
	tracker := &mockTracker{
		issues:   []domain.RawIssue{issue},
		comments: []domain.RawComment{rawComment(1, 5, day(11))},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(15)))
	require.NoError(t, err)

	for _, e := range entries {
		assert.NotEqual(t, domain.EntryIssue, e.Kind, "issue published before since must not appear")
		assert.NotEqual(t, "Comment on: Bug", e.Title)
	}
}

func TestAggregate_OrphanCommentKeepsPlaceholder(t *testing.T) {
	tracker := &mockTracker{
		issues: []domain.RawIssue{rawIssue(5, "Bug", day(10))},
		comments: []domain.RawComment{
			rawComment(1, 3, day(11)),
			rawComment(2, 5, day(11)),
			rawComment(3, 3, day(12)),
		},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "Bug", entries[0].Title)
	assert.Equal(t, domain.EntryID(domain.EntryComment, 2), entries[1].ID)
	assert.Equal(t, "Comment on issue #3", entries[2].Title)
	assert.Equal(t, domain.EntryID(domain.EntryComment, 1), entries[2].ID)
	assert.Equal(t, "Comment on issue #3", entries[3].Title)
	assert.Equal(t, domain.EntryID(domain.EntryComment, 3), entries[3].ID)
}

func TestAggregate_CommentsFollowTheirIssueInOrder(t *testing.T) {
	tracker := &mockTracker{
		issues: []domain.RawIssue{
			rawIssue(7, "Seven", day(10)),
			rawIssue(8, "Eight", day(10)),
		},
		comments: []domain.RawComment{
			rawComment(30, 8, day(11)),
			rawComment(10, 7, day(11)),
			rawComment(20, 8, day(12)),
			rawComment(5, 7, day(13)),
		},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{
		domain.EntryID(domain.EntryIssue, 7),
		domain.EntryID(domain.EntryComment, 10),
		domain.EntryID(domain.EntryComment, 5),
		domain.EntryID(domain.EntryIssue, 8),
		domain.EntryID(domain.EntryComment, 30),
		domain.EntryID(domain.EntryComment, 20),
	}, ids)
	assert.Equal(t, "Comment on: Eight", entries[5].Title)
}

func TestAggregate_PullRequestsExcluded(t *testing.T) {
	pr := rawIssue(9, "Feature", day(10))
	pr.PullRequest = true
	giteaPR := rawIssue(10, "Other", day(10))
	giteaPR.HTMLURL = "https://gitea.com/octo/hello/pulls/10"

	prComment := rawComment(1, 9, day(11))
	prComment.HTMLURL = "https://github.com/octo/hello/pull/9#issuecomment-1"
	giteaPRComment := rawComment(2, 10, day(11))
	giteaPRComment.IssueURL = "https://gitea.com/api/v1/repos/octo/hello/pulls/10"

	tracker := &mockTracker{
		issues:   []domain.RawIssue{pr, giteaPR},
		comments: []domain.RawComment{prComment, giteaPRComment},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAggregate_MalformedIssueURLSkipped(t *testing.T) {
	empty := rawComment(1, 5, day(11))
	empty.IssueURL = ""
	bad := rawComment(2, 5, day(11))
	bad.IssueURL = "https://api.github.com/repos/octo/hello/issues/abc"

	tracker := &mockTracker{comments: []domain.RawComment{empty, bad}}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAggregate_UpstreamStatusError(t *testing.T) {
	tracker := &mockTracker{
		issues:    []domain.RawIssue{rawIssue(5, "Bug", day(10))},
		issuesErr: &domain.UpstreamStatusError{StatusCode: 403, Message: "rate limited"},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))

	assert.Empty(t, entries)
	statusErr, ok := domain.IsUpstreamStatus(err)
	require.True(t, ok)
	assert.Equal(t, 403, statusErr.StatusCode)
	assert.Equal(t, "From server: rate limited", statusErr.Error())
}

func TestAggregate_CommentsErrorAborts(t *testing.T) {
	tracker := &mockTracker{
		issues:      []domain.RawIssue{rawIssue(5, "Bug", day(10))},
		commentsErr: &domain.DecodeError{Resource: "comments", Err: errors.New("bad json")},
	}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))

	assert.Empty(t, entries)
	assert.True(t, domain.IsDecode(err))
}

func TestAggregate_TrackerFactoryError(t *testing.T) {
	a := NewAggregator(&mockTrackerFactory{err: assert.AnError})

	_, err := collect(t, a, testQuery(day(1)))

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAggregate_QueriesBothCollections(t *testing.T) {
	tracker := &mockTracker{}
	q := testQuery(day(1))
	q.Page = 3
	q.Limit = 10

	_, err := collect(t, newTestAggregator(tracker), q)
	require.NoError(t, err)

	require.Len(t, tracker.queries, 2)
	for _, got := range tracker.queries {
		assert.Equal(t, q, got)
	}
}

func TestAggregate_DeterministicAcrossCalls(t *testing.T) {
	tracker := &mockTracker{
		issues:   []domain.RawIssue{rawIssue(5, "Bug", day(10)), rawIssue(6, "Crash", day(12))},
		comments: []domain.RawComment{rawComment(1, 5, day(11)), rawComment(2, 4, day(11))},
	}
	a := newTestAggregator(tracker)

	first, err := collect(t, a, testQuery(day(1)))
	require.NoError(t, err)
	second, err := collect(t, a, testQuery(day(1)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_StopsWhenConsumerBreaks(t *testing.T) {
	tracker := &mockTracker{
		issues: []domain.RawIssue{rawIssue(5, "Bug", day(10)), rawIssue(6, "Crash", day(12))},
	}

	count := 0
	for _, err := range newTestAggregator(tracker).Aggregate(context.Background(), testQuery(day(1))) {
		assert.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestAggregate_TimestampsNormalised(t *testing.T) {
	issue := rawIssue(5, "Bug", time.Date(2024, 1, 10, 20, 0, 0, 123456789, time.FixedZone("CST", 8*3600)))
	tracker := &mockTracker{issues: []domain.RawIssue{issue}}

	entries, err := collect(t, newTestAggregator(tracker), testQuery(day(1)))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, time.UTC, entries[0].Published.Location())
	assert.Equal(t, 0, entries[0].Published.Nanosecond())
	assert.Equal(t, 12, entries[0].Published.Hour())
}
