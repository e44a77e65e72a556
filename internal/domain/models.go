package domain

// Classification labels how a raw query relates to the basketball domain.
type Classification int

const (
	// ClassOutcome marks team/outcome prediction questions ("will X make the finals").
	ClassOutcome Classification = 1
	// ClassPlayerStat marks questions or statements about a player or statistic.
	ClassPlayerStat Classification = 0
	// ClassOutOfDomain marks text unrelated to basketball.
	ClassOutOfDomain Classification = -1
)

// Player is the canonical player shape used across the service.
// Name is the single authoritative spelling; resolution funnels every
// accepted variant to it.
type Player struct {
	Name     string     `json:"name"`
	Team     string     `json:"team,omitempty"`
	Position string     `json:"position,omitempty"`
	Meta     PlayerMeta `json:"meta,omitempty"`
}

// PlayerMeta holds upstream metadata.
type PlayerMeta struct {
	UpstreamPlayerID int `json:"upstreamPlayerId,omitempty"`
}

// Metric is the canonical name of a tracked statistic
// (e.g. "true shooting percentage").
type Metric string

func (m Metric) String() string { return string(m) }

// Query captures one parsed request. Instances live for a single request
// and are never persisted.
type Query struct {
	RawText        string         `json:"rawText"`
	Classification Classification `json:"classification"`
	Entities       []Player       `json:"entities,omitempty"`
	Metric         *Metric        `json:"metric,omitempty"`
}

// ChatResponse is the payload returned by /bot-msg.
type ChatResponse struct {
	Reply          string         `json:"reply"`
	Classification Classification `json:"classification"`
}
