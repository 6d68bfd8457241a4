package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondFeverAnyCaseAnySurroundingText(t *testing.T) {
	inputs := []string{
		"fever",
		"FEVER",
		"I have a Fever today",
		"  my kid has fever since monday  ",
	}

	for _, input := range inputs {
		resp := Respond(input)
		require.Contains(t, resp.Text, "Fever is often a sign", "input %q should hit the fever rule", input)
	}
}

func TestRespondMedicineReminderRoutesToReminderRule(t *testing.T) {
	// The medicine rule excludes "reminder", so this must fall through to
	// the reminder rule further down the table.
	resp := Respond("medicine reminder")
	require.Contains(t, resp.Text, "set a medicine reminder")
	assert.Equal(t, []string{"Cancel"}, resp.Suggestions)
}

func TestRespondMedicineWithoutReminder(t *testing.T) {
	resp := Respond("what medicine should I take")
	require.Contains(t, resp.Text, "I cannot prescribe specific medications")
}

func TestRespondGreeting(t *testing.T) {
	resp := Respond("Hello there")
	require.Contains(t, resp.Text, "Health-Care Assistant")
	assert.NotEmpty(t, resp.Suggestions)
}

func TestRespondEmergencyHasNoSuggestions(t *testing.T) {
	resp := Respond("urgent")
	require.Contains(t, resp.Text, "Emergency Protocol")
	assert.Empty(t, resp.Suggestions)
}

func TestRespondPriorityFirstMatchWins(t *testing.T) {
	// "fever" outranks "cough" in the table.
	resp := Respond("fever and cough")
	require.Contains(t, resp.Text, "Fever is often a sign")
}

func TestRespondFallback(t *testing.T) {
	resp := Respond("qwertyuiop")
	require.Contains(t, resp.Text, "I didn't quite catch that")
	assert.Equal(t,
		[]string{"Symptoms", "Doctor Appointment", "Emergency Help", "Medicine Reminder"},
		resp.Suggestions)
}

func TestRespondIsTotalAndPure(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n", "fever"} {
		first := Respond(input)
		second := Respond(input)
		require.NotEmpty(t, first.Text, "Respond must always produce text")
		assert.Equal(t, first, second, "Respond must be deterministic")
	}
}

func TestRuleTableCategories(t *testing.T) {
	// Each keyword lands in its own category, identified by a distinctive
	// fragment of the response text.
	cases := map[string]string{
		"cold":        "Common colds",
		"headache":    "dark, quiet room",
		"appointment": "book an appointment",
		"covid":       "COVID-19 symptoms",
		"symptoms":    "common ailments",
		"hospital":    "City Health Center",
		"diseases":    "Diabetes, Hypertension",
		"thank you":   "Stay healthy",
	}

	for input, fragment := range cases {
		resp := Respond(input)
		require.True(t, strings.Contains(resp.Text, fragment),
			"input %q: expected response containing %q, got %q", input, fragment, resp.Text)
	}
}
