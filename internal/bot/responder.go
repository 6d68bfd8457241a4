package bot

import (
	"strings"

	"healthbot-backend/internal/models"
)

// rule pairs a keyword predicate with its canned response. Keywords are
// matched by substring containment against the normalized input, OR-ed
// across synonyms; excluded keywords veto the match so a later rule can
// claim the input instead.
type rule struct {
	keywords []string
	excluded []string
	response models.BotResponse
}

func (r rule) matches(query string) bool {
	for _, kw := range r.excluded {
		if strings.Contains(query, kw) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// rules is evaluated top to bottom; the first match wins. Order is part of
// the contract: the medicine rule excludes "reminder" so that reminder-
// related medicine queries fall through to the reminder rule below it.
var rules = []rule{
	{
		keywords: []string{"hi", "hello", "hey"},
		response: models.BotResponse{
			Text:        "Hello! I'm your Health-Care Assistant. I'm available 24/7 to help you with basic health inquiries. How can I assist you today?",
			Suggestions: []string{models.ActionSymptoms, "Appointment", models.ActionEmergency, models.ActionMedicineReminder},
		},
	},
	{
		keywords: []string{"fever"},
		response: models.BotResponse{
			Text:        "Fever is often a sign that your body is fighting an infection. Common causes include the flu, cold, or COVID-19. \n\nCare Tips:\n1. Drink plenty of fluids.\n2. Get lots of rest.\n3. Monitor your temperature.\n\nPlease consult a doctor if the fever exceeds 103°F (39.4°C) or lasts more than 3 days.",
			Suggestions: []string{models.ActionSymptoms, models.ActionMedicines, models.ActionAppointment},
		},
	},
	{
		keywords: []string{"cold", "cough"},
		response: models.BotResponse{
			Text:        "Common colds usually resolve on their own within a week. \n\nTips:\n- Stay hydrated with warm liquids.\n- Use a humidifier.\n- Gargle with salt water for sore throat.\n\nIf symptoms persist, consider speaking with a physician.",
			Suggestions: []string{models.ActionMedicines, models.ActionAppointment},
		},
	},
	{
		keywords: []string{"headache"},
		response: models.BotResponse{
			Text:        "Headaches can be caused by stress, dehydration, or eye strain. Try resting in a dark, quiet room and drinking water. If you experience sudden, severe pain or vision changes, seek immediate help.",
			Suggestions: []string{models.ActionSymptoms, models.ActionEmergency},
		},
	},
	{
		keywords: []string{"appointment", "book", "doctor"},
		response: models.BotResponse{
			Text:        "To book an appointment with our specialists, you can:\n1. Use our online portal at www.health-care.com/book\n2. Call our help desk at 1-800-HEALTHY.\n3. Visit our hospital reception desk.\n\nWould you like information about a specific department?",
			Suggestions: []string{"Cardiology", "Pediatrics", "General Medicine"},
		},
	},
	{
		keywords: []string{"emergency", "urgent", "help"},
		response: models.BotResponse{
			Text: "⚠️ **Emergency Protocol**\nIf this is a life-threatening emergency, please call **911** (or your local emergency number) immediately.\n\nOur 24/7 Emergency Room is located at: \n123 Wellness Ave, Health City.\nHelpline: 999-000-111",
		},
	},
	{
		keywords: []string{"covid", "corona"},
		response: models.BotResponse{
			Text:        "COVID-19 symptoms include fever, dry cough, and tiredness. If you suspect you have COVID-19, please self-isolate and get tested. Ensure you are up to date with vaccinations.",
			Suggestions: []string{models.ActionSymptoms, "Vaccination Info"},
		},
	},
	{
		keywords: []string{"symptoms"},
		response: models.BotResponse{
			Text:        "I can provide information about symptoms for common ailments like Fever, Cold, Headache, or Allergies. Which one are you experiencing?",
			Suggestions: []string{"Fever", "Headache", "Cold"},
		},
	},
	{
		keywords: []string{"medicine"},
		excluded: []string{"reminder"},
		response: models.BotResponse{
			Text:        "I cannot prescribe specific medications. However, for mild symptoms, over-the-counter options like Ibuprofen or Acetaminophen are commonly used. Always consult a pharmacist or doctor before taking new medication.",
			Suggestions: []string{models.ActionAppointment, models.ActionMedicineReminder},
		},
	},
	{
		keywords: []string{"hospital", "location"},
		response: models.BotResponse{
			Text:        "Our main hospital, 'City Health Center', is located at 123 Wellness Ave. We have branches in Northview and Southside. All locations are open 24/7.",
			Suggestions: []string{"View Map", models.ActionEmergency},
		},
	},
	{
		keywords: []string{"diseases"},
		response: models.BotResponse{
			Text:        "We provide care for various conditions including Diabetes, Hypertension, and Infectious Diseases. Please visit our 'Services' page or book a consultation for a detailed diagnosis.",
			Suggestions: []string{"Diabetes", "Hypertension", models.ActionAppointment},
		},
	},
	{
		keywords: []string{"reminder"},
		response: models.BotResponse{
			Text:        "I can help you set a medicine reminder! Let's start. What is the name of the medicine?",
			Suggestions: []string{models.ActionCancel},
		},
	},
	{
		keywords: []string{"thank"},
		response: models.BotResponse{
			Text:        "You're very welcome! Stay healthy. I'm here 24/7 if you need anything else.",
			Suggestions: []string{"Menu", models.ActionSymptoms},
		},
	},
}

// fallback is returned when no rule matches.
var fallback = models.BotResponse{
	Text:        "I'm sorry, I didn't quite catch that. I am a rule-based assistant specializing in healthcare. Try asking about symptoms, appointments, or emergency help.",
	Suggestions: []string{models.ActionSymptoms, models.ActionAppointment, models.ActionEmergency, models.ActionMedicineReminder},
}

// Respond maps free-text user input to a canned response. It is pure and
// total: input is trimmed and lowercased, the rule table is scanned in
// priority order, and the fallback is returned when nothing matches.
func Respond(input string) models.BotResponse {
	query := strings.ToLower(strings.TrimSpace(input))

	for _, r := range rules {
		if r.matches(query) {
			return r.response
		}
	}

	return fallback
}
