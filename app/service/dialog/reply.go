package dialog

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

const minSimilarForChips = 4

// Destinations suggested when we have nothing better to offer.
var defaultSuggestions = []string{"Valencia", "Madrid", "Berlin", "Vancouver"}

func textMessage(text string) Message {
	return Message{Text: &Text{Text: []string{text}}}
}

func suggestionChips(titles []string) Message {
	chips := make([]Suggestion, 0, len(titles))
	for _, title := range titles {
		chips = append(chips, Suggestion{Title: title})
	}

	return Message{Suggestions: &Suggestions{Suggestions: chips}}
}

// similarChips filters the home city out of the similar-destinations list
// and returns the first four entries, or nil when fewer than four remain.
// Filtering builds a new slice, the catalog record is never mutated.
func similarChips(similar []string, homeCity string) []string {
	filtered := pie.Filter(similar, func(name string) bool {
		return !strings.EqualFold(name, homeCity)
	})

	if len(filtered) < minSimilarForChips {
		return nil
	}

	return filtered[:minSimilarForChips]
}

func welcomeResponse() *WebhookResponse {
	return &WebhookResponse{
		FulfillmentMessages: []Message{
			textMessage("Hi, where do you want to fly to?"),
			suggestionChips(defaultSuggestions),
		},
	}
}

func fallbackResponse() *WebhookResponse {
	return &WebhookResponse{
		FulfillmentMessages: []Message{
			textMessage("I'm sorry, can you try again?"),
			suggestionChips(defaultSuggestions),
		},
	}
}
