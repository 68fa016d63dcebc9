package forward

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"sort"
)

// Encoding selects the wire format used to deliver a normalized payload.
type Encoding string

const (
	EncodingJSON      Encoding = "json"
	EncodingForm      Encoding = "form"
	EncodingMultipart Encoding = "multipart"
)

// ParseEncoding validates a configured encoding name. An empty name falls
// back to JSON.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(name) {
	case "":
		return EncodingJSON, nil
	case EncodingJSON, EncodingForm, EncodingMultipart:
		return Encoding(name), nil
	}
	return "", fmt.Errorf("forward: unknown encoding %q", name)
}

// Encode serializes payload under the requested encoding and returns the
// Content-Type value alongside the body. Keys holding nil are dropped
// entirely, never encoded as empty strings.
func Encode(payload map[string]any, enc Encoding) (string, []byte, error) {
	switch enc {
	case EncodingJSON:
		return encodeJSON(payload)
	case EncodingForm:
		return encodeForm(payload)
	case EncodingMultipart:
		return encodeMultipart(payload)
	}
	return "", nil, fmt.Errorf("forward: unknown encoding %q", enc)
}

func encodeJSON(payload map[string]any) (string, []byte, error) {
	trimmed := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		trimmed[k] = v
	}
	body, err := json.Marshal(trimmed)
	if err != nil {
		return "", nil, fmt.Errorf("forward: encode json: %w", err)
	}
	return "application/json", body, nil
}

func encodeForm(payload map[string]any) (string, []byte, error) {
	// url.Values.Encode sorts keys, so the pairs are written by hand to keep
	// the alias-table order intact.
	var buf bytes.Buffer
	for _, key := range orderedKeys(payload) {
		value, err := stringify(payload[key])
		if err != nil {
			return "", nil, err
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(value))
	}
	return "application/x-www-form-urlencoded", buf.Bytes(), nil
}

func encodeMultipart(payload map[string]any) (string, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range orderedKeys(payload) {
		value, err := stringify(payload[key])
		if err != nil {
			return "", nil, err
		}
		if err := w.WriteField(key, value); err != nil {
			return "", nil, fmt.Errorf("forward: write multipart field %q: %w", key, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("forward: close multipart body: %w", err)
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

// orderedKeys returns the payload keys with nil values dropped: alias-table
// outputs first in table order, then submittedAt, then extras sorted.
func orderedKeys(payload map[string]any) []string {
	known := map[string]bool{submittedAtKey: true}
	keys := make([]string, 0, len(payload))
	for _, rule := range aliasTable {
		for _, name := range rule.outputs {
			known[name] = true
			if v, ok := payload[name]; ok && v != nil {
				keys = append(keys, name)
			}
		}
	}
	if v, ok := payload[submittedAtKey]; ok && v != nil {
		keys = append(keys, submittedAtKey)
	}
	extras := make([]string, 0, len(payload))
	for k, v := range payload {
		if v == nil || known[k] {
			continue
		}
		extras = append(extras, k)
	}
	sort.Strings(extras)
	return append(keys, extras...)
}

func stringify(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("forward: stringify value: %w", err)
	}
	return string(raw), nil
}
