package state

import (
	"log"

	"atarize-core/pkg/store"
)

// Machine owns every transition of the dialogue flags. All methods operate
// on the request-local session copy; nothing here persists state.
//
// The lead_pending / lead_collected pair is mutually exclusive. The flags
// were once set from several call sites and drifted into impossible
// combinations, so every transition funnels through here and Normalize
// repairs (loudly) anything that still arrives broken.
type Machine struct {
	maxAttempts int
	logger      *log.Logger
}

func NewMachine(maxAttempts int, logger *log.Logger) *Machine {
	if maxAttempts <= 0 {
		maxAttempts = 2
	}
	return &Machine{maxAttempts: maxAttempts, logger: logger}
}

// Normalize validates flag consistency at pipeline entry. A conflicting
// session is a programmer error somewhere upstream; it is logged loudly and
// repaired in favor of the collected state, never silently defaulted.
func (m *Machine) Normalize(s *store.Session) {
	if s.LeadPending && s.LeadCollected {
		m.logger.Printf("[ERROR] Session %s has lead_pending and lead_collected both set; clearing pending", s.ID)
		s.LeadPending = false
		s.LeadAttempts = 0
	}
	if s.TopicsDiscussed == nil {
		s.TopicsDiscussed = make(map[string]bool)
	}
}

// Begin marks the first reply of a session.
func (m *Machine) Begin(s *store.Session) {
	s.Greeted = true
}

// OfferLead enters collection mode. No-op once a lead was collected.
func (m *Machine) OfferLead(s *store.Session) {
	if s.LeadCollected {
		return
	}
	s.LeadPending = true
	s.LeadAttempts = 0
}

// CollectLead finalizes a validated record: collecting always clears the
// pending flag.
func (m *Machine) CollectLead(s *store.Session) {
	s.LeadCollected = true
	s.LeadPending = false
	s.LeadAttempts = 0
}

// AbandonLead exits collection mode without a record.
func (m *Machine) AbandonLead(s *store.Session) {
	s.LeadPending = false
	s.LeadAttempts = 0
}

// RecordFailedAttempt counts an unsuccessful collection turn. Returns true
// when the limit is reached, in which case collection mode is abandoned and
// the caller continues the normal flow.
func (m *Machine) RecordFailedAttempt(s *store.Session) bool {
	s.LeadAttempts++
	if s.LeadAttempts >= m.maxAttempts {
		m.logger.Printf("[DEBUG] Lead attempts exhausted for session %s, resetting", s.ID)
		m.AbandonLead(s)
		return true
	}
	return false
}

// RecordPositiveTurn counts an engagement signal.
func (m *Machine) RecordPositiveTurn(s *store.Session) {
	s.PositiveTurns++
}

// RecordInformativeReply counts a substantive answer delivered to the user.
func (m *Machine) RecordInformativeReply(s *store.Session) {
	s.InformativeReplies++
}

// ShouldOfferLead reports whether accumulated engagement justifies asking
// for contact details: two positive turns, or one positive turn after at
// least one informative reply was already given.
func (m *Machine) ShouldOfferLead(s *store.Session) bool {
	if s.LeadPending || s.LeadCollected {
		return false
	}
	if s.PositiveTurns >= 2 {
		return true
	}
	return s.PositiveTurns >= 1 && s.InformativeReplies >= 1
}

// MarkTopicDiscussed remembers that a full explanation was delivered, so a
// repeat question yields a shortened acknowledgment instead.
func (m *Machine) MarkTopicDiscussed(s *store.Session, topic string) {
	if topic == "" {
		return
	}
	s.TopicsDiscussed[topic] = true
}

// TopicAlreadyDiscussed gates repeat explanations.
func (m *Machine) TopicAlreadyDiscussed(s *store.Session, topic string) bool {
	return topic != "" && s.TopicsDiscussed[topic]
}
