package sim

import (
	"fmt"
	"time"
)

// ArtifactType categorizes an artifact's media kind.
// Closed set; the resource manager's size table must cover every value.
type ArtifactType int

const (
	Photograph ArtifactType = iota
	Document
	Video
)

func (t ArtifactType) String() string {
	switch t {
	case Photograph:
		return "Photograph"
	case Document:
		return "Document"
	case Video:
		return "Video"
	default:
		return fmt.Sprintf("ArtifactType(%d)", int(t))
	}
}

// ArtifactTypes lists all artifact types, in declaration order.
var ArtifactTypes = []ArtifactType{Photograph, Document, Video}

// ParseArtifactType converts a config/display string to an ArtifactType.
func ParseArtifactType(s string) (ArtifactType, error) {
	switch s {
	case "photograph", "Photograph":
		return Photograph, nil
	case "document", "Document":
		return Document, nil
	case "video", "Video":
		return Video, nil
	default:
		return 0, fmt.Errorf("%w: unknown artifact type %q", ErrInvalidInput, s)
	}
}

// Importance is the externally-assigned business value of an artifact.
type Importance int

const (
	ImportanceLow Importance = iota
	ImportanceStandard
	ImportanceCritical
)

func (i Importance) String() string {
	switch i {
	case ImportanceCritical:
		return "Critical"
	case ImportanceStandard:
		return "Standard"
	case ImportanceLow:
		return "Low"
	default:
		return fmt.Sprintf("Importance(%d)", int(i))
	}
}

// Importances lists all importance levels, in declaration order.
var Importances = []Importance{ImportanceLow, ImportanceStandard, ImportanceCritical}

// UsageFrequency is the derived recency/volume classification of access
// activity. Never stored; recomputed on demand from the artifact's access
// bookkeeping via EvaluateUsage.
type UsageFrequency int

const (
	UsageLow UsageFrequency = iota
	UsageMedium
	UsageHigh
)

func (u UsageFrequency) String() string {
	switch u {
	case UsageHigh:
		return "High"
	case UsageMedium:
		return "Medium"
	case UsageLow:
		return "Low"
	default:
		return fmt.Sprintf("UsageFrequency(%d)", int(u))
	}
}

// StorageTier is a storage class with distinct cost/capacity characteristics.
type StorageTier int

const (
	TierHot StorageTier = iota
	TierWarm
	TierCold
)

func (t StorageTier) String() string {
	switch t {
	case TierHot:
		return "Hot Storage"
	case TierWarm:
		return "Warm Storage"
	case TierCold:
		return "Cold Storage"
	default:
		return fmt.Sprintf("StorageTier(%d)", int(t))
	}
}

// StorageTiers lists all tiers, ordered from cheapest retrieval to most expensive.
var StorageTiers = []StorageTier{TierHot, TierWarm, TierCold}

// Artifact is a digital object under management. Immutable once created
// except for access bookkeeping (AccessCount, LastAccessed) performed by
// external callers; the core never mutates those fields itself.
type Artifact struct {
	ID           string
	Name         string
	Type         ArtifactType
	AccessCount  int       // accesses within the observation window
	LastAccessed time.Time // absolute point in time
	Importance   Importance
}

// Record is the display form of one classified artifact, as returned by
// ProcessArtifacts.
type Record struct {
	ID             string
	Name           string
	Type           string
	UsageFrequency string
	Importance     string
	AssignedTier   string
}
