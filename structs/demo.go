package structs

type DemoRequestInput struct {
	BarName     string `json:"bar_name" validate:"required,min=2,max=200"`
	ContactName string `json:"contact_name" validate:"required,min=2,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=6,max=30"`
	Location    string `json:"location" validate:"required,min=2,max=300"`
	Message     string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// DemoRelayResult reports how the enquiry was delivered. When the relay is
// unreachable the enquiry is still persisted locally and MailtoLink carries
// a prebuilt fallback the caller can open instead.
type DemoRelayResult struct {
	Relayed    bool   `json:"relayed"`
	MailtoLink string `json:"mailto_link,omitempty"`
}
