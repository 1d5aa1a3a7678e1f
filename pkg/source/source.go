// Package source defines the closed taxonomy of document channels a
// field candidate can originate from. The origin of a candidate drives
// its reliability weighting during fusion and is recorded in the audit
// trail of every decision.
package source

import "strings"

// Origin identifies the document channel that produced a candidate value.
type Origin int

// The known origins. The zero value is Unknown so an unset candidate
// never silently inherits a real channel's reliability.
const (
	// Unknown is the origin of a candidate whose channel was not recorded.
	Unknown Origin = iota

	// XML is the structured data file accompanying an order.
	XML

	// OpticalScan is text recognized from a scanned document.
	OpticalScan

	// FreeText is the authority-issued free-text document.
	FreeText

	// Derived marks values computed from other fields rather than read
	// from any document.
	Derived

	// Manual marks values captured by a human reviewer.
	Manual
)

// Origins returns all known origins.
func Origins() []Origin {
	return []Origin{Unknown, XML, OpticalScan, FreeText, Derived, Manual}
}

// String returns the string representation of an origin.
func (o Origin) String() string {
	switch o {
	case XML:
		return "xml"
	case OpticalScan:
		return "scan"
	case FreeText:
		return "freetext"
	case Derived:
		return "derived"
	case Manual:
		return "manual"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Code returns the stable numeric code used when origins are persisted
// or exchanged with external systems.
func (o Origin) Code() int {
	switch o {
	case XML:
		return 1
	case OpticalScan:
		return 2
	case FreeText:
		return 3
	case Derived:
		return 4
	case Manual:
		return 5
	case Unknown:
		return 0
	default:
		return 0
	}
}

// IsValid returns true if the origin is one of the defined constants.
func (o Origin) IsValid() bool {
	return o >= Unknown && o <= Manual
}

// Parse maps a string representation back to an origin. Unrecognized
// strings map to Unknown.
func Parse(s string) Origin {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return XML
	case "scan", "ocr":
		return OpticalScan
	case "freetext", "docx":
		return FreeText
	case "derived":
		return Derived
	case "manual":
		return Manual
	default:
		return Unknown
	}
}

// FromCode maps a stable numeric code back to an origin.
func FromCode(code int) Origin {
	switch code {
	case 1:
		return XML
	case 2:
		return OpticalScan
	case 3:
		return FreeText
	case 4:
		return Derived
	case 5:
		return Manual
	default:
		return Unknown
	}
}
