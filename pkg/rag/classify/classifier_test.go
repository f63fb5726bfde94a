package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultLists())
}

func TestLanguage(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "english text", text: "how much does it cost?", expected: LangEnglish},
		{name: "hebrew text", text: "כמה זה עולה?", expected: LangHebrew},
		{name: "mixed defaults to english", text: "שלום hello", expected: LangEnglish},
		{name: "digits only treated as hebrew", text: "0501234567", expected: LangHebrew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Language(tt.text))
		})
	}
}

func TestIsGreeting(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsGreeting("Hello there"))
	assert.True(t, c.IsGreeting("בוקר טוב"))
	assert.True(t, c.IsGreeting("good morning!"))
	assert.False(t, c.IsGreeting("how much does a bot cost"))
	assert.False(t, c.IsGreeting("this is my third question"), "hi inside a word is not a greeting")
}

func TestIsConfirmationRequiresWholeUtterance(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsConfirmation("yes"))
	assert.True(t, c.IsConfirmation("  כן "))
	assert.True(t, c.IsConfirmation("OK"))
	assert.False(t, c.IsConfirmation("yes, but how much does it cost"))
}

func TestHasBuyingIntent(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "direct english commitment", text: "I want to buy a chatbot", expected: true},
		{name: "direct hebrew commitment", text: "אני רוצה לקנות בוט", expected: true},
		{name: "commitment wins over price question", text: "אני רוצה לקנות את הבוט. כמה זה עולה?", expected: true},
		{name: "price question alone", text: "how much does it cost?", expected: false},
		{name: "info only", text: "just want to know what it does", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.HasBuyingIntent(tt.text))
		})
	}
}

func TestIsPositiveEngagementExcludesInfoOnly(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsPositiveEngagement("sounds good, this could help"))
	assert.True(t, c.IsPositiveEngagement("זה בדיוק מה שאני צריך"))
	assert.False(t, c.IsPositiveEngagement("interesting, but just want info for now"))
	assert.False(t, c.IsPositiveEngagement("what's the price"))
}

func TestIsVeryShort(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsVeryShort("hm"))
	assert.False(t, c.IsVeryShort("ok"), "confirmation words are not vague input")
	assert.False(t, c.IsVeryShort("כן"))
	assert.False(t, c.IsVeryShort("pricing?"))
}

func TestBusinessVertical(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, "restaurant", c.BusinessVertical("יש לי מסעדה קטנה בתל אביב"))
	assert.Equal(t, "recruitment", c.BusinessVertical("we are hiring and need to screen applicants"))
	assert.Equal(t, "", c.BusinessVertical("tell me about your product"))
}

func TestTopicOfMessage(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, TopicPricing, c.TopicOfMessage("המחיר מתחיל מ-290 שח לחודש"))
	assert.Equal(t, TopicExamples, c.TopicOfMessage("Would you like to see an example?"))
	assert.Equal(t, TopicProcess, c.TopicOfMessage("התהליך לוקח כמה ימים"))
	assert.Equal(t, "", c.TopicOfMessage("nice weather today"))
}

func TestIsDisengagement(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsDisengagement("לא עכשיו"))
	assert.True(t, c.IsDisengagement("no thanks"))
	assert.False(t, c.IsDisengagement("my name is Dana"))
}
