package atom

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

const (
	// Namespace is the Atom XML namespace.
	Namespace = "http://www.w3.org/2005/Atom"

	// ContentType is the media type of an Atom document.
	ContentType = "application/atom+xml"

	// GeneratorName identifies issuefeed in the generator element.
	GeneratorName = "issuefeed"

	// EntryContentType is the declared type of entry content.
	EntryContentType = "text/markdown"

	indent = "    "
)

// Link relations.
const (
	RelAlternate = "alternate"
	RelSelf      = "self"
	RelPrevious  = "previous"
	RelNext      = "next"
)

// Metadata holds the feed header.
type Metadata struct {
	Title     string
	Subtitle  string
	ID        string // urn:uuid form
	Icon      string
	Alternate string
	Self      string
	Previous  string // omitted when empty
	Next      string // omitted when empty
	Version   string // generator version, omitted when empty
}

// Builder accumulates entries and renders the feed.
// A Builder is not safe for concurrent use.
type Builder struct {
	meta       Metadata
	entries    []entryXML
	lastUpdate time.Time
}

// NewBuilder creates a builder for a feed with the given header.
func NewBuilder(meta Metadata) *Builder {
	return &Builder{
		meta:       meta,
		lastUpdate: domain.Epoch,
	}
}

// Add appends an entry and advances the feed-level updated timestamp.
func (b *Builder) Add(e domain.UpdateEntry) {
	b.entries = append(b.entries, entryXML{
		Title:     textXML{Type: "text", Text: e.Title},
		Link:      linkXML{Rel: RelAlternate, Href: e.Link},
		Author:    personXML{Name: e.Author},
		ID:        e.URN(),
		Category:  categoryXML{Term: e.Kind.String()},
		Published: domain.FormatTimestamp(e.Published),
		Updated:   domain.FormatTimestamp(e.Updated),
		Content:   textXML{Type: EntryContentType, Text: e.Content},
	})
	if e.Updated.After(b.lastUpdate) {
		b.lastUpdate = e.Updated
	}
}

// Len returns the number of entries added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Updated returns the newest entry timestamp, or domain.Epoch when no
// entry has been added.
func (b *Builder) Updated() time.Time {
	return b.lastUpdate
}

// Encode writes the XML document to w, indented when pretty is set.
func (b *Builder) Encode(w io.Writer, pretty bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	if pretty {
		enc.Indent("", indent)
	}
	if err := enc.Encode(b.document()); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func (b *Builder) document() feedXML {
	links := []linkXML{{Rel: RelAlternate, Href: b.meta.Alternate}}
	if b.meta.Self != "" {
		links = append(links, linkXML{Rel: RelSelf, Href: b.meta.Self, Type: ContentType})
	}
	if b.meta.Previous != "" {
		links = append(links, linkXML{Rel: RelPrevious, Href: b.meta.Previous, Type: ContentType})
	}
	if b.meta.Next != "" {
		links = append(links, linkXML{Rel: RelNext, Href: b.meta.Next, Type: ContentType})
	}

	return feedXML{
		Title:     b.meta.Title,
		Subtitle:  b.meta.Subtitle,
		ID:        b.meta.ID,
		Icon:      b.meta.Icon,
		Links:     links,
		Generator: generatorXML{Version: b.meta.Version, Name: GeneratorName},
		Updated:   domain.FormatTimestamp(b.lastUpdate),
		Entries:   b.entries,
	}
}
