package domain

type InboundCall struct {
	CallID     string `json:"call_id" validate:"required"`
	FromNumber string `json:"from_number" validate:"required"`
	ToNumber   string `json:"to_number" validate:"required"`
}

// ToolPlaceOrderRequest is what the voice provider posts when the agent invokes place_order.
type ToolPlaceOrderRequest struct {
	CallID     string   `json:"call_id" validate:"required"`
	ToNumber   string   `json:"to_number" validate:"required"`
	RoomNumber string   `json:"room_number" validate:"required"`
	Items      []string `json:"items" validate:"required,min=1,dive,required"`
}

type AgentConfig struct {
	AgentID         string `json:"agent_id"`
	LLMWebsocketURL string `json:"llm_websocket_url"`
	VoiceID         string `json:"voice_id"`
	SystemPrompt    string `json:"system_prompt"`
	Tools           []Tool `json:"tools"`
}

type Tool struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

type ToolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required"`
}

type ToolProperty struct {
	Type  string        `json:"type"`
	Items *ToolProperty `json:"items,omitempty"`
}

func PlaceOrderTool() Tool {
	return Tool{
		Type:        "function",
		Name:        "place_order",
		Description: "Place a room service order",
		Parameters: ToolParameters{
			Type: "object",
			Properties: map[string]ToolProperty{
				"room_number": {Type: "string"},
				"items":       {Type: "array", Items: &ToolProperty{Type: "string"}},
			},
			Required: []string{"room_number", "items"},
		},
	}
}
