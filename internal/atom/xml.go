package atom

import "encoding/xml"

// Field order of these structs is the element order of the document.

type feedXML struct {
	XMLName   xml.Name     `xml:"http://www.w3.org/2005/Atom feed"`
	Title     string       `xml:"title"`
	Subtitle  string       `xml:"subtitle"`
	ID        string       `xml:"id"`
	Icon      string       `xml:"icon"`
	Links     []linkXML    `xml:"link"`
	Generator generatorXML `xml:"generator"`
	Updated   string       `xml:"updated"`
	Entries   []entryXML   `xml:"entry"`
}

type linkXML struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr,omitempty"`
}

type generatorXML struct {
	Version string `xml:"version,attr,omitempty"`
	Name    string `xml:",chardata"`
}

type entryXML struct {
	Title     textXML     `xml:"title"`
	Link      linkXML     `xml:"link"`
	Author    personXML   `xml:"author"`
	ID        string      `xml:"id"`
	Category  categoryXML `xml:"category"`
	Published string      `xml:"published"`
	Updated   string      `xml:"updated"`
	Content   textXML     `xml:"content"`
}

type textXML struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

type personXML struct {
	Name string `xml:"name"`
}

type categoryXML struct {
	Term string `xml:"term,attr"`
}
