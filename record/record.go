package record

import (
	"fmt"
	"log/slog"

	"github.com/nordcart/mcp-commerce/catalog"
	"github.com/nordcart/mcp-commerce/document"
)

// Record maps target attribute names to coerced scalar values
// (bool, int64, float64 or string).
type Record map[string]any

// Diagnostic describes a source attribute that a mapping referenced but
// the document did not carry.
type Diagnostic struct {
	SourceAttribute string
	Document        string
	Context         string
}

// Sink receives diagnostics emitted while mapping. It must not block;
// mapping continues regardless of what the sink does.
type Sink func(Diagnostic)

// SlogSink adapts a slog logger into a diagnostics sink.
func SlogSink(log *slog.Logger) Sink {
	return func(d Diagnostic) {
		log.Warn("source attribute missing",
			"attribute", d.SourceAttribute,
			"context", d.Context,
			"document", d.Document)
	}
}

// DiscardSink drops all diagnostics.
func DiscardSink(Diagnostic) {}

// MapFields extracts and coerces one record from a source document
// according to the field mappings, in mapping order.
//
// A mapping whose source attribute is absent from the document emits a
// diagnostic and is skipped; the rest of the record is still built. A
// present value of the wrong underlying type aborts the whole record:
// absence is an expected variant of the source data, a mismatch is a
// catalog misconfiguration. When two mappings share a target attribute
// the later one wins.
func MapFields(doc document.Document, mappings []catalog.FieldMapping, contextID string, sink Sink) (Record, error) {
	if sink == nil {
		sink = DiscardSink
	}

	rec := make(Record, len(mappings))
	for _, m := range mappings {
		value, ok := doc.Lookup(m.SourceAttribute)
		if !ok {
			sink(Diagnostic{
				SourceAttribute: m.SourceAttribute,
				Document:        doc.Snapshot(),
				Context:         contextID,
			})
			continue
		}

		coerced, err := coerce(value, m.AttributeType())
		if err != nil {
			return nil, fmt.Errorf("mapping %s -> %s: %w", m.SourceAttribute, m.TargetAttribute, err)
		}
		rec[m.TargetAttribute] = coerced
	}
	return rec, nil
}

func coerce(value document.Value, t catalog.AttributeType) (any, error) {
	switch t {
	case catalog.TypeBoolean:
		return value.AsBool()
	case catalog.TypeInteger:
		return value.AsInt()
	case catalog.TypeNumber:
		return value.AsDecimal()
	default:
		return value.AsString()
	}
}
