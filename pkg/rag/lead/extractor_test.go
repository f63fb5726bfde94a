package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCompleteRecord(t *testing.T) {
	e := NewExtractor()

	rec := e.Extract("John Doe 0501234567 john@example.com")

	assert.Equal(t, "John Doe", rec.Name)
	assert.Equal(t, "0501234567", rec.Phone)
	assert.Equal(t, "john@example.com", rec.Email)
	assert.True(t, rec.Complete())
	assert.Empty(t, rec.MissingFields())
}

func TestExtractWithoutNameIsNotComplete(t *testing.T) {
	e := NewExtractor()

	rec := e.Extract("0501234567 john@example.com")

	assert.Empty(t, rec.Name)
	assert.Equal(t, "0501234567", rec.Phone)
	assert.Equal(t, "john@example.com", rec.Email)
	assert.False(t, rec.Complete())
	assert.Equal(t, []string{"name"}, rec.MissingFields())
}

func TestExtractSelfIntroduction(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "english intro", text: "hi, my name is Dana Cohen, call me back", expected: "Dana Cohen"},
		{name: "hebrew intro", text: "קוראים לי דנה כהן ואשמח שתחזרו אלי", expected: "דנה כהן"},
		{name: "intro followed by label stops", text: "my name is Dana, phone 0501234567", expected: "Dana"},
		{name: "interest is not an introduction", text: "I am interested in a bot", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Extract(tt.text).Name)
		})
	}
}

func TestExtractPhoneShapes(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "mobile", text: "0501234567", expected: "0501234567"},
		{name: "with dash", text: "052-1234567", expected: "052-1234567"},
		{name: "with space", text: "09 7654321", expected: "09 7654321"},
		{name: "too short", text: "050123", expected: ""},
		{name: "no leading zero", text: "5012345678", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Extract(tt.text).Phone)
		})
	}
}

func TestExtractEmailValidation(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "dana@walla.co.il", e.Extract("my mail is dana@walla.co.il thanks").Email)
	assert.Empty(t, e.Extract("no email here").Email)
	assert.Empty(t, e.Extract("broken@@example").Email)
}

func TestExtractEmailDoesNotFeedNameHeuristic(t *testing.T) {
	e := NewExtractor()

	// "John Smith" shaped tokens inside an address must not count as a name.
	rec := e.Extract("John.Smith@example.com 0501234567")
	assert.Empty(t, rec.Name)
	assert.False(t, rec.Complete())
}

func TestExtractHebrewFullName(t *testing.T) {
	e := NewExtractor()

	rec := e.Extract("דנה כהן 0521234567 dana@gmail.com")
	assert.Equal(t, "דנה כהן", rec.Name)
	assert.True(t, rec.Complete())
}

func TestExtractLabelWordsAreNotNames(t *testing.T) {
	e := NewExtractor()

	rec := e.Extract("שם מלא טלפון ואימייל")
	assert.Empty(t, rec.Name)
}
