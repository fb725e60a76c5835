package service

import (
	"encoding/json"
	"strings"
	"text/template"

	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var promptTemplate = template.Must(template.New("system_prompt").Parse(
	`You are the helpful front desk and room service AI for {{.HotelName}}. Be polite, concise, and professional.

Your goal is to take room service orders or answer questions about the hotel.

Here is the Current Menu:
{{.Menu}}

Rules:
1. Always confirm the room number at the start.
2. If ordering food, ask for any dietary restrictions.
3. If the user asks for something not on the menu, politely decline.

You have access to the following tools:
- place_order(room_number, items[])
`))

type menuExcerptEntry struct {
	Item     string          `json:"item"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// RenderPrompt embeds the hotel name and a JSON excerpt of the menu into the agent instructions.
func RenderPrompt(hotel domain.Hotel, menu []domain.MenuItem) (string, error) {
	excerpt := make([]menuExcerptEntry, 0, len(menu))
	for _, item := range menu {
		excerpt = append(excerpt, menuExcerptEntry{Item: item.Name, Price: item.Price, Category: item.Category})
	}
	menuJSON, err := json.MarshalIndent(excerpt, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, struct {
		HotelName string
		Menu      string
	}{HotelName: hotel.Name, Menu: string(menuJSON)}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
