package cleaners

import (
	"encoding/json"
	"strings"
	"time"
)

// jsonLDErrorKind tags why a JSON-LD block was rejected. These failures are
// local to metadata extraction (spec §7): they never escape the extractor,
// they only cause a fall-back to tag-derived meta.
type jsonLDErrorKind int

const (
	jsonLDParseError jsonLDErrorKind = iota
	jsonLDMissingContext
	jsonLDInvalidContext
	jsonLDMissingType
	jsonLDInvalidType
)

type jsonLDError struct {
	kind jsonLDErrorKind
	msg  string
}

func (e *jsonLDError) Error() string { return e.msg }

// ParseJSONLD validates and extracts article fields from a JSON-LD blob per
// spec §4.4. This is grounded in the teacher's
// pkg/extractors/generic/description.go JSON-LD handling (unmarshal into
// map[string]interface{}, switch on @type), generalized to the full
// 19-member article-type set and the recursive author resolution spec.md
// requires; encoding/json (stdlib) is used because the pack carries no
// third-party JSON library for this concern.
func ParseJSONLD(raw string) (TagMeta, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return TagMeta{}, &jsonLDError{kind: jsonLDParseError, msg: "invalid JSON-LD: " + err.Error()}
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		// Non-object roots are silently ignored: success, no fields.
		return TagMeta{}, nil
	}

	context, hasContext := obj["@context"]
	if !hasContext {
		return TagMeta{}, &jsonLDError{kind: jsonLDMissingContext, msg: "missing @context"}
	}
	contextStr, ok := context.(string)
	if !ok {
		return TagMeta{}, &jsonLDError{kind: jsonLDMissingContext, msg: "@context is not a string"}
	}
	if !schemaOrgContextRE.MatchString(contextStr) {
		return TagMeta{}, &jsonLDError{kind: jsonLDInvalidContext, msg: "@context does not match schema.org"}
	}

	typeVal, hasType := obj["@type"]
	if !hasType {
		return TagMeta{}, &jsonLDError{kind: jsonLDMissingType, msg: "missing @type"}
	}
	typeStr, ok := typeVal.(string)
	if !ok || !recognizedArticleTypes[typeStr] {
		return TagMeta{}, &jsonLDError{kind: jsonLDInvalidType, msg: "@type is not a recognized article type"}
	}

	var meta TagMeta
	meta.Title = firstNonEmptyString(obj, "name", "headline")
	meta.Description = firstNonEmptyString(obj, "description")

	if author := parseAuthor(obj["author"]); author != "" {
		meta.Author = author
	}

	if dateStr := firstNonEmptyString(obj, "dateModified", "datePublished"); dateStr != "" {
		if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
			meta.LastModified = &t
		}
	}

	return meta, nil
}

func firstNonEmptyString(obj map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// parseAuthor implements spec §4.4's recursive author resolution: a string
// may itself be JSON (re-parse and recurse), an array joins non-empty
// recursive results with ", ", an object yields its "name" key, anything
// else yields none.
func parseAuthor(v interface{}) string {
	switch val := v.(type) {
	case string:
		var nested interface{}
		if err := json.Unmarshal([]byte(val), &nested); err == nil {
			return parseAuthor(nested)
		}
		return val
	case []interface{}:
		var parts []string
		for _, item := range val {
			if s := parseAuthor(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		if name, ok := val["name"].(string); ok {
			return name
		}
		return ""
	default:
		return ""
	}
}
