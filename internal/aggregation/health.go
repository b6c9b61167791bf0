package aggregation

import (
	"fmt"
	"math"
)

// WorkflowBand classifies a document's distribution into one of three
// qualitative bands for summary messaging.
type WorkflowBand int

const (
	// BandTrap means automatable work dominates the week.
	BandTrap WorkflowBand = iota
	// BandMixed means neither the trap nor the healthy criteria hold.
	BandMixed
	// BandHealthy means high-value work leads and automatable work is contained.
	BandHealthy
)

// String returns the string representation of the band
func (b WorkflowBand) String() string {
	switch b {
	case BandTrap:
		return "trap"
	case BandMixed:
		return "mixed"
	case BandHealthy:
		return "healthy"
	default:
		return "unknown"
	}
}

// Thresholds are the percentage cut-offs for workflow classification.
type Thresholds struct {
	Trap               int
	HealthyHighValue   int
	HealthyAutomatable int
}

// Classify places a document into exactly one band given its composite
// percentages. The trap check wins over the healthy check.
func Classify(highValuePercent, automatablePercent int, th Thresholds) WorkflowBand {
	if automatablePercent >= th.Trap {
		return BandTrap
	}
	if highValuePercent >= th.HealthyHighValue && automatablePercent <= th.HealthyAutomatable {
		return BandHealthy
	}
	return BandMixed
}

// Message returns the summary line for the band.
func (b WorkflowBand) Message() string {
	switch b {
	case BandTrap:
		return "Most of your time goes to automatable work. This is the CAIO trap: the week fills with communication and admin while advisory work starves."
	case BandHealthy:
		return "High-value work leads your week and automatable work is contained. Keep protecting that advisory time."
	default:
		return "Your week is a mix. There is room to shift hours from automatable work toward advisory and pilot work."
	}
}

// FormatHours renders an hour count the way the rest of the tool does:
// minutes below one hour, one decimal above.
func FormatHours(hours float64) string {
	if hours == 0 {
		return "0 hrs"
	}
	if hours < 1 {
		return fmt.Sprintf("%d min", int(math.Round(hours*60)))
	}
	if hours == 1 {
		return "1 hr"
	}
	return fmt.Sprintf("%.1f hrs", hours)
}
