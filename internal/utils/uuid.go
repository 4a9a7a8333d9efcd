package utils

import "github.com/google/uuid"

// TraceIDGenerator produces identifiers for requests that arrive without an
// X-Trace-ID header. Time-ordered UUIDv7 values are preferred so that trace
// ids sort by arrival; a random UUIDv4 is used if v7 generation fails.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
