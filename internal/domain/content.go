package domain

// SiteContent is the full copy of the marketing site, served to the frontend
// as a single document. The structure mirrors the page sections.
type SiteContent struct {
	Meta         Meta            `json:"meta"`
	Company      Company         `json:"company"`
	Nav          Nav             `json:"nav"`
	Hero         Hero            `json:"hero"`
	Services     ServicesSection `json:"services"`
	About        AboutSection    `json:"about"`
	Testimonials Testimonials    `json:"testimonials"`
	Contact      ContactSection  `json:"contact"`
	Footer       Footer          `json:"footer"`
}

// Meta holds the SEO title and description for the page head.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Company holds the legal and contact identity of the business.
type Company struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Hours        string `json:"hours"`
	Registration string `json:"registration"`
	VAT          string `json:"vat"`
	Capital      string `json:"capital"`
}

type Nav struct {
	Home     string `json:"home"`
	Services string `json:"services"`
	About    string `json:"about"`
	Contact  string `json:"contact"`
	CTA      string `json:"cta"`
}

type Hero struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	CTA      HeroCTA      `json:"cta"`
	Trust    []TrustBadge `json:"trust"`
}

type HeroCTA struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type TrustBadge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type ServicesSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []ServiceItem `json:"items"`
}

// ServiceItem describes one service card. ID matches the contact form's
// service enum values.
type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type AboutSection struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Content  []string       `json:"content"`
	Values   []CompanyValue `json:"values"`
}

type CompanyValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Testimonials struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
}

type Testimonial struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
}

type ContactSection struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Form     ContactForm `json:"form"`
	Info     ContactInfo `json:"info"`
}

// ContactForm holds the labels, placeholders and status messages for the
// contact form UI.
type ContactForm struct {
	Name       FormField    `json:"name"`
	Email      FormField    `json:"email"`
	Phone      FormField    `json:"phone"`
	Service    ServiceField `json:"service"`
	Message    FormField    `json:"message"`
	Submit     string       `json:"submit"`
	Submitting string       `json:"submitting"`
	Success    string       `json:"success"`
	Error      string       `json:"error"`
}

type FormField struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

type ServiceField struct {
	Label       string          `json:"label"`
	Placeholder string          `json:"placeholder"`
	Options     []ServiceOption `json:"options"`
}

type ServiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ContactInfo struct {
	Title   string        `json:"title"`
	Address ContactDetail `json:"address"`
	Phone   ContactDetail `json:"phone"`
	Email   ContactDetail `json:"email"`
	Hours   ContactDetail `json:"hours"`
}

type ContactDetail struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Footer struct {
	Description string         `json:"description"`
	Sections    FooterSections `json:"sections"`
	Copyright   string         `json:"copyright"`
}

type FooterSections struct {
	Services FooterSection `json:"services"`
	Company  FooterSection `json:"company"`
	Legal    FooterSection `json:"legal"`
}

type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links,omitempty"`
}

type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}
