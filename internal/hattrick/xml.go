package hattrick

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "nt-data-lab/internal/errors"
)

// FetchedDateLayout is the timestamp layout used by the source documents.
const FetchedDateLayout = "2006-01-02 15:04:05"

// inlineGroups are nested elements whose children are flattened without a prefix.
var inlineGroups = map[string]bool{
	"PlayerSkills": true,
}

// node is a generic XML element.
type node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []node `xml:",any"`
}

func (n *node) child(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *node) text(name string) string {
	if c := n.child(name); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

func decodeDocument(data []byte) (*node, error) {
	var root node
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedXML, err)
	}
	return &root, nil
}

func parseFetchedDate(root *node) (time.Time, error) {
	raw := root.text("FetchedDate")
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: FetchedDate", apperrors.ErrMissingField)
	}
	fetched, err := time.ParseInLocation(FetchedDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: FetchedDate %q", apperrors.ErrMalformedXML, raw)
	}
	return fetched, nil
}

// flatten turns an element into a flat key-value record. Leaf elements map to
// their trimmed text; nested groups are prefixed with their parent name unless
// listed in inlineGroups.
func flatten(n *node) map[string]interface{} {
	out := make(map[string]interface{})
	flattenInto(out, "", n.Nodes)
	return out
}

func flattenInto(out map[string]interface{}, prefix string, nodes []node) {
	for _, c := range nodes {
		name := c.XMLName.Local
		if len(c.Nodes) == 0 {
			out[prefix+name] = strings.TrimSpace(c.Text)
			continue
		}
		if inlineGroups[name] {
			flattenInto(out, prefix, c.Nodes)
			continue
		}
		flattenInto(out, prefix+name+"_", c.Nodes)
	}
}
