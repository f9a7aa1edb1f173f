// ABOUTME: State strategy reading the embedded data-state blob of the result page
// ABOUTME: Walks known JSON paths to the result items and reads their URL fields

package extract

import (
	"encoding/json"
	"html"
	"regexp"

	coreerrors "snapfind-api/core/errors"
)

// StrategyState is the name of the structured-state strategy
const StrategyState = "state"

// DefaultStatePaths are the nested keys leading to the result item array
var DefaultStatePaths = [][]string{
	{"initialState", "cbirSites", "sites"},
	{"cbirSites", "sites"},
	{"sites", "items"},
}

// DefaultURLFields are tried in order on every result item
var DefaultURLFields = []string{"url", "originalUrl", "pageUrl", "href"}

var rawStateAttr = regexp.MustCompile(`data-state="([^"]*)"`)

// stateDecode is the outcome of decoding a state blob: parsedState or unparsedState
type stateDecode interface {
	isStateDecode()
}

type parsedState struct {
	items []interface{}
}

type unparsedState struct {
	err error
}

func (parsedState) isStateDecode()   {}
func (unparsedState) isStateDecode() {}

// StateStrategy reads result URLs from the serialized state embedded in the page
type StateStrategy struct {
	Selector  string
	Paths     [][]string
	URLFields []string
}

// NewStateStrategy returns the strategy configured for the provider's markup
func NewStateStrategy() *StateStrategy {
	return &StateStrategy{
		Selector:  "div.Root[data-state]",
		Paths:     DefaultStatePaths,
		URLFields: DefaultURLFields,
	}
}

// Name implements Strategy
func (s *StateStrategy) Name() string { return StrategyState }

// Extract implements Strategy
func (s *StateStrategy) Extract(doc *Document) []string {
	var urls []string
	seen := make(map[string]struct{})
	for _, blob := range s.blobs(doc) {
		decoded, ok := s.decode(blob).(parsedState)
		if !ok {
			continue
		}
		for _, item := range decoded.items {
			if u := s.itemURL(item); u != "" {
				urls = appendUnique(urls, seen, u)
			}
		}
	}
	return urls
}

// blobs returns the raw state attribute values found on the page
func (s *StateStrategy) blobs(doc *Document) []string {
	var blobs []string
	if doc.DOM != nil {
		for _, node := range doc.DOM.Find(s.Selector).Nodes {
			for _, attr := range node.Attr {
				if attr.Key == "data-state" {
					blobs = append(blobs, attr.Val)
				}
			}
		}
	}
	if len(blobs) > 0 {
		return blobs
	}
	for _, m := range rawStateAttr.FindAllStringSubmatch(doc.Page.Markup, -1) {
		blobs = append(blobs, html.UnescapeString(m[1]))
	}
	return blobs
}

// decode parses a blob, unescaping once more when the first attempt fails
func (s *StateStrategy) decode(blob string) stateDecode {
	var state interface{}
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		if err := json.Unmarshal([]byte(html.UnescapeString(blob)), &state); err != nil {
			return unparsedState{err: &coreerrors.MalformedPayloadError{Source: "data-state", Reason: err.Error()}}
		}
	}
	for _, path := range s.Paths {
		if items, ok := walk(state, path); ok {
			return parsedState{items: items}
		}
	}
	return unparsedState{err: &coreerrors.MalformedPayloadError{Source: "data-state", Reason: "no result list at known paths"}}
}

func (s *StateStrategy) itemURL(item interface{}) string {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return ""
	}
	for _, field := range s.URLFields {
		if v, ok := obj[field].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// walk follows path through nested objects and expects an array at the end
func walk(v interface{}, path []string) ([]interface{}, bool) {
	cur := v
	for _, key := range path {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	items, ok := cur.([]interface{})
	return items, ok
}
