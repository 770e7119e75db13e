package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps a response body so that it is decoded as UTF-8.
//
// JSON is UTF-8 unless the server says otherwise, so the body is returned
// untouched when the Content-Type carries no charset or declares UTF-8. A
// declared legacy charset (ISO-8859-1, Windows-1252, ...) is transcoded.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	cs, ok := params["charset"]
	if !ok || strings.EqualFold(cs, "utf-8") || strings.EqualFold(cs, "utf8") {
		return body, nil
	}

	return charset.NewReader(body, contentType)
}
