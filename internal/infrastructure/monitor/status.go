package monitor

import "time"

// UpstreamState reflects the outcome of the most recent AI call.
type UpstreamState string

const (
	UpstreamUnknown  UpstreamState = "unknown"
	UpstreamOnline   UpstreamState = "online"
	UpstreamDegraded UpstreamState = "degraded"
)

type Status struct {
	Storage      bool          `json:"storage"`
	ChatMessages int           `json:"chat_messages"`
	Assistant    UpstreamState `json:"assistant"`
	LastCheck    time.Time     `json:"last_check"`
}
