package utils

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalJSONNoHTMLEscape marshals v without escaping <, > and &, the result has no trailing newline.
func MarshalJSONNoHTMLEscape(v any) ([]byte, error) {
	return marshalJSONNoHTMLEscape(v)
}

func MarshalIndentJSONNoHTMLEscape(v any, prefix, indent string) ([]byte, error) {
	return marshalJSONNoHTMLEscape(v, func(encoder *json.Encoder) {
		encoder.SetIndent(prefix, indent)
	})
}

func marshalJSONNoHTMLEscape(v any, encoderOptions ...func(encoder *json.Encoder)) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	for _, opt := range encoderOptions {
		opt(encoder)
	}

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	//remove newline
	b := buf.Bytes()
	return bytes.TrimSuffix(b, []byte{'\n'}), nil
}
