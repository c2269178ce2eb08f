package events

import "time"

const PayrollSnapshotRefreshedTopic = "payroll.snapshot.refreshed.v1"

// PayrollSnapshotRefreshedEvent is emitted each time the live poller accepts a
// newer current-month snapshot.
type PayrollSnapshotRefreshedEvent struct {
	EventType       string    `json:"event_type"`
	Month           string    `json:"month"`
	TotalGross      float64   `json:"total_gross"`
	TotalAllowances float64   `json:"total_allowances"`
	TotalDeductions float64   `json:"total_deductions"`
	TotalNet        float64   `json:"total_net"`
	SnapshotAt      time.Time `json:"snapshot_at"`
	OccurredAt      time.Time `json:"occurred_at"`
}
