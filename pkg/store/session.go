package store

// Turn is a single message in the conversation history.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant" | "system"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Session is the unit of conversational memory, keyed by an opaque client id.
// The pipeline receives a copy and returns an updated value; it is never
// mutated in place by nested helpers.
type Session struct {
	ID      string `json:"id"`
	History []Turn `json:"history"`

	Greeted       bool `json:"greeted"`
	LeadPending   bool `json:"lead_pending"`
	LeadCollected bool `json:"lead_collected"`
	LeadAttempts  int  `json:"lead_attempts"`

	PositiveTurns      int             `json:"positive_turns"`
	InformativeReplies int             `json:"informative_replies"`
	TopicsDiscussed    map[string]bool `json:"topics_discussed"`

	BusinessType string `json:"business_type"`
	LastIntent   string `json:"last_intent"`
}

// Dialogue states derived from the session flags.
const (
	StateFresh         = "FRESH"
	StateActive        = "ACTIVE"
	StateLeadPending   = "LEAD_PENDING"
	StateLeadCollected = "LEAD_COLLECTED"
)

// State derives the dialogue state from the session flags.
func (s *Session) State() string {
	switch {
	case s.LeadCollected:
		return StateLeadCollected
	case s.LeadPending:
		return StateLeadPending
	case s.Greeted:
		return StateActive
	default:
		return StateFresh
	}
}

// Clone returns a deep copy so the pipeline can work on a value and the
// caller can persist it only once the reply is final.
func (s Session) Clone() Session {
	out := s
	out.History = make([]Turn, len(s.History))
	copy(out.History, s.History)
	out.TopicsDiscussed = make(map[string]bool, len(s.TopicsDiscussed))
	for k, v := range s.TopicsDiscussed {
		out.TopicsDiscussed[k] = v
	}
	return out
}

// AppendTurn records a message on the copy.
func (s *Session) AppendTurn(role, content string) {
	s.History = append(s.History, Turn{Role: role, Content: content})
}

// LastAssistantTurn returns the most recent assistant message, or "".
func (s *Session) LastAssistantTurn() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleAssistant {
			return s.History[i].Content
		}
	}
	return ""
}

// RecentHistory returns up to n of the most recent turns.
func (s *Session) RecentHistory(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		out := make([]Turn, len(s.History))
		copy(out, s.History)
		return out
	}
	out := make([]Turn, n)
	copy(out, s.History[len(s.History)-n:])
	return out
}
