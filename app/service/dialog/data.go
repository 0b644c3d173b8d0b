package dialog

// Dialogflow v2 fulfillment payloads, trimmed to the fields this webhook
// actually reads and writes.

type WebhookRequest struct {
	ResponseID  string      `json:"responseId"`
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

type QueryResult struct {
	QueryText      string         `json:"queryText"`
	Parameters     map[string]any `json:"parameters"`
	Intent         Intent         `json:"intent"`
	OutputContexts []Context      `json:"outputContexts"`
}

type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Context is a platform-persisted parameter snapshot. The platform
// decrements LifespanCount every turn and drops the context at zero.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

type WebhookResponse struct {
	FulfillmentMessages []Message `json:"fulfillmentMessages"`
	OutputContexts      []Context `json:"outputContexts,omitempty"`
}

// Message is one fulfillment message, exactly one field is set.
type Message struct {
	Text        *Text        `json:"text,omitempty"`
	Card        *Card        `json:"card,omitempty"`
	Suggestions *Suggestions `json:"suggestions,omitempty"`
}

type Text struct {
	Text []string `json:"text"`
}

type Card struct {
	Title    string       `json:"title"`
	ImageURI string       `json:"imageUri,omitempty"`
	Buttons  []CardButton `json:"buttons,omitempty"`
}

type CardButton struct {
	Text     string `json:"text"`
	Postback string `json:"postback"`
}

type Suggestions struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type Suggestion struct {
	Title string `json:"title"`
}
