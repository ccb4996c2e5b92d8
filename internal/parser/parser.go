package parser

import "apismoke/internal/domain"

// Parser turns a raw response body into a domain.Body
type Parser interface {
	Parse(raw []byte) domain.Body
}
