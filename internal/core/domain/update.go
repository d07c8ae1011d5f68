package domain

import (
	"encoding/binary"
	"hash/crc32"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EntryKind tags an UpdateEntry as an issue or a comment.
type EntryKind string

const (
	// EntryIssue is a newly opened issue.
	EntryIssue EntryKind = "issue"
	// EntryComment is a new or edited comment on an issue.
	EntryComment EntryKind = "comment"
)

// String returns the string representation.
func (k EntryKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is recognised.
func (k EntryKind) IsValid() bool {
	return k == EntryIssue || k == EntryComment
}

// Namespaces for name-based identifiers. Changing either value changes
// every identifier handed out so far, and feed readers would show all
// entries as new.
var (
	entryNamespace = uuid.MustParse("6f1c8a52-3d0e-4c55-9a8e-2b7c1f4d9e60")
	feedNamespace  = uuid.MustParse("0b9d2e7a-51f4-4d8c-8c3e-7a6f5e1d2c94")
)

// UpdateEntry is a single item of an issue feed.
type UpdateEntry struct {
	Kind      EntryKind
	ID        string
	Link      string
	Title     string
	Content   string
	Author    string
	Published time.Time
	Updated   time.Time
}

// URN returns the entry identifier in urn:uuid form.
func (e UpdateEntry) URN() string {
	return "urn:uuid:" + e.ID
}

// EntryID derives the identifier of an upstream item.
// The result depends only on kind and number.
func EntryID(kind EntryKind, number int64) string {
	name := string(kind) + ":" + strconv.FormatInt(number, 10)
	return uuid.NewSHA1(entryNamespace, []byte(name)).String()
}

// FeedID derives the identifier of a repository's feed from the CRC-32
// checksum of its name.
func FeedID(repo string) string {
	var seed [4]byte
	binary.BigEndian.PutUint32(seed[:], crc32.ChecksumIEEE([]byte(repo)))
	return uuid.NewSHA1(feedNamespace, seed[:]).String()
}
