// Package aiparse turns free-text model replies into structured values.
//
// Parsing happens in two stages. ExtractObject looks for a JSON object
// embedded in the reply and decodes it as-is; a valid object with a mistyped
// field still decodes, leaving that field zero. When no object is found,
// callers fall back to the field helpers (ListField, SentenceField,
// IntField) and fill any miss with a fixed default. Results record which
// stage produced them through Confidence.
package aiparse
