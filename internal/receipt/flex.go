// Package receipt builds the Flex-style document sent back to the user as a
// rich chat message after a successful order.
package receipt

import (
	"fmt"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/cart"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
)

// Component is one node of the document tree. The platform's layout schema is
// a single polymorphic node type discriminated by Type, so optional fields are
// simply omitted when empty.
type Component struct {
	Type     string      `json:"type"`
	Layout   string      `json:"layout,omitempty"`
	Text     string      `json:"text,omitempty"`
	Weight   string      `json:"weight,omitempty"`
	Color    string      `json:"color,omitempty"`
	Size     string      `json:"size,omitempty"`
	Align    string      `json:"align,omitempty"`
	Margin   string      `json:"margin,omitempty"`
	Spacing  string      `json:"spacing,omitempty"`
	Wrap     bool        `json:"wrap,omitempty"`
	Flex     int         `json:"flex,omitempty"`
	Contents []Component `json:"contents,omitempty"`
}

type BlockStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

type BubbleStyles struct {
	Header BlockStyle `json:"header"`
}

type Bubble struct {
	Type   string       `json:"type"`
	Header Component    `json:"header"`
	Body   Component    `json:"body"`
	Styles BubbleStyles `json:"styles"`
}

// Message is the complete receipt document.
type Message struct {
	Type     string `json:"type"`
	AltText  string `json:"altText"`
	Contents Bubble `json:"contents"`
}

func separator(margin string) Component {
	return Component{Type: "separator", Margin: margin}
}

// New assembles the receipt for an accepted order: header, itemized list,
// delivery-method block and total. The delivery block has exactly three
// branches: pickup renders a single in-store pickup row, delivery renders
// method, requested time and address, and any other method omits the block
// entirely so the receipt degrades gracefully.
func New(lines []cart.Line, totalPrice int, choice delivery.Choice) *Message {
	body := []Component{
		{Type: "text", Text: "ご注文内容", Size: "xs", Color: "#aaaaaa"},
		separator("md"),
	}

	for _, l := range lines {
		body = append(body, Component{
			Type: "box", Layout: "horizontal",
			Contents: []Component{
				{Type: "text", Text: fmt.Sprintf("%s (%s)", l.GroupName, l.OptionName), Wrap: true, Flex: 3},
				{Type: "text", Text: fmt.Sprintf("x %d", l.Quantity), Flex: 1, Align: "end"},
			},
		})
	}

	body = append(body, separator("lg"))
	body = append(body, deliveryBlock(choice)...)
	body = append(body,
		separator("lg"),
		Component{
			Type: "box", Layout: "horizontal", Margin: "md",
			Contents: []Component{
				{Type: "text", Text: "合計金額", Weight: "bold"},
				{Type: "text", Text: fmt.Sprintf("¥%d", totalPrice), Weight: "bold", Align: "end"},
			},
		},
	)

	return &Message{
		Type:    "flex",
		AltText: "ご注文内容の確認",
		Contents: Bubble{
			Type: "bubble",
			Header: Component{
				Type: "box", Layout: "vertical",
				Contents: []Component{
					{Type: "text", Text: "THANK YOU!", Weight: "bold", Color: "#1DB446", Size: "md"},
					{Type: "text", Text: "ご注文が確定しました", Weight: "bold", Size: "xl", Margin: "md"},
				},
			},
			Body:   Component{Type: "box", Layout: "vertical", Contents: body},
			Styles: BubbleStyles{Header: BlockStyle{BackgroundColor: "#F0FFF0"}},
		},
	}
}

func deliveryBlock(choice delivery.Choice) []Component {
	switch choice.Method {
	case delivery.MethodPickup:
		return []Component{{
			Type: "box", Layout: "horizontal", Margin: "md",
			Contents: []Component{
				{Type: "text", Text: "お受け取り方法", Size: "sm", Color: "#555555", Flex: 1},
				{Type: "text", Text: "店舗でのお受け取り", Size: "sm", Color: "#111111", Align: "end", Flex: 2},
			},
		}}
	case delivery.MethodDelivery:
		return []Component{{
			Type: "box", Layout: "vertical", Margin: "md", Spacing: "sm",
			Contents: []Component{
				{Type: "box", Layout: "baseline", Contents: []Component{
					{Type: "text", Text: "お受け取り方法", Size: "sm", Color: "#555555", Flex: 1},
					{Type: "text", Text: "配達", Size: "sm", Color: "#111111", Align: "end", Flex: 2},
				}},
				{Type: "box", Layout: "baseline", Contents: []Component{
					{Type: "text", Text: "配達希望時間", Size: "sm", Color: "#555555", Flex: 1},
					{Type: "text", Text: choice.Time, Size: "sm", Color: "#111111", Align: "end", Flex: 2},
				}},
				{Type: "box", Layout: "vertical", Contents: []Component{
					{Type: "text", Text: "配達先住所", Size: "sm", Color: "#555555"},
					{Type: "text", Text: choice.Address, Size: "sm", Color: "#111111", Wrap: true, Margin: "sm"},
				}},
			},
		}}
	default:
		// unknown method: omit the block rather than fail
		return nil
	}
}
