package parser

import "io"

// Parser defines a generic interface for decoding a provider response body
type Parser[T any] interface {
	Parse(body io.Reader) (T, error)
}
