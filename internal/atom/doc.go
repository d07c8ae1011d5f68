// Package atom renders issue feed entries as an Atom (RFC 4287) document.
//
// The feed-level updated element precedes the entries in document order
// but its value is the newest entry timestamp. A Builder therefore buffers
// every entry and writes the whole document in Encode:
//
//	b := atom.NewBuilder(meta)
//	for entry, err := range entries {
//	    if err != nil {
//	        return err
//	    }
//	    b.Add(entry)
//	}
//	return b.Encode(w, pretty)
package atom
