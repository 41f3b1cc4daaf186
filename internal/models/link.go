package models

type LinkStyle string

const (
	BasicLink  LinkStyle = "basic"
	CustomLink LinkStyle = "custom"
)

type Link struct {
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	SystemImage string    `json:"systemImage,omitempty"`
	Style       LinkStyle `json:"style"`
}

// DemoLinks returns the two link demos in display order.
func DemoLinks() []Link {
	return []Link{
		{Title: "Go to Apple", Destination: "https://apple.com", Style: BasicLink},
		{Title: "Apple Store", Destination: "https://apple.com", SystemImage: "apple.logo", Style: CustomLink},
	}
}
