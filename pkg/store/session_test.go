package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateDerivation(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected string
	}{
		{name: "fresh", session: Session{}, expected: StateFresh},
		{name: "active", session: Session{Greeted: true}, expected: StateActive},
		{name: "pending", session: Session{Greeted: true, LeadPending: true}, expected: StateLeadPending},
		{name: "collected wins", session: Session{Greeted: true, LeadPending: true, LeadCollected: true}, expected: StateLeadCollected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.State())
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Session{ID: "s1", TopicsDiscussed: map[string]bool{"pricing": true}}
	s.AppendTurn(RoleUser, "hello")

	c := s.Clone()
	c.AppendTurn(RoleAssistant, "hi there")
	c.TopicsDiscussed["setup_process"] = true

	assert.Len(t, s.History, 1)
	assert.False(t, s.TopicsDiscussed["setup_process"])
	assert.Len(t, c.History, 2)
}

func TestLastAssistantTurn(t *testing.T) {
	s := Session{}
	assert.Equal(t, "", s.LastAssistantTurn())

	s.AppendTurn(RoleUser, "question")
	s.AppendTurn(RoleAssistant, "answer")
	s.AppendTurn(RoleUser, "follow-up")
	assert.Equal(t, "answer", s.LastAssistantTurn())
}

func TestRecentHistoryWindow(t *testing.T) {
	s := Session{}
	for _, content := range []string{"a", "b", "c", "d"} {
		s.AppendTurn(RoleUser, content)
	}

	recent := s.RecentHistory(2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Content)
	assert.Equal(t, "d", recent[1].Content)

	assert.Len(t, s.RecentHistory(10), 4)
	assert.Nil(t, s.RecentHistory(0))
}
