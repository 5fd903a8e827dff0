// Package payload builds request bodies paired with their content type.
package payload

import (
	"net/url"
	"strings"
)

// Content types understood by the device.
const (
	// MultipartFormData is reserved; no encoder produces it.
	MultipartFormData = "multipart/form-data"
	FormURLEncoded    = "application/x-www-form-urlencoded"
	JSON              = "application/json"
	TextPlain         = "text/plain"
)

// Payload is an encoded request body and the content type describing it.
type Payload struct {
	ContentType string
	Body        string
}

// Form encodes alternating key/value strings as
// application/x-www-form-urlencoded. A trailing key without a value is
// dropped. Pairs keep their input order.
func Form(pairs ...string) Payload {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeComponent(pairs[i]))
		b.WriteByte('=')
		b.WriteString(escapeComponent(pairs[i+1]))
	}
	return Payload{ContentType: FormURLEncoded, Body: b.String()}
}

// JSONObject encodes fields as a JSON object. Nil values are written as
// explicit nulls.
func JSONObject(fields map[string]any) Payload {
	return Payload{ContentType: JSON, Body: Stringify(fields)}
}

// Plain wraps text as a text/plain body.
func Plain(text string) Payload {
	return Payload{ContentType: TextPlain, Body: text}
}

// escapeComponent applies form escaping (space becomes '+'). QueryEscape is
// total over arbitrary bytes, so there is no error path to fall back from.
func escapeComponent(s string) string {
	return url.QueryEscape(s)
}
