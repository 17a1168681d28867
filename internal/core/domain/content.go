package domain

// Supported landing page languages.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Hero is the top-of-page marketing section.
type Hero struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	CTALabel string `json:"cta_label" bson:"cta_label"`
	CTAHref  string `json:"cta_href" bson:"cta_href"`
}

// Stat is a single headline number ("12,000 graduates").
type Stat struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

// Feature is one card in the features grid.
type Feature struct {
	Icon        string `json:"icon" bson:"icon"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// Corporate is the corporate-solutions pitch section.
type Corporate struct {
	Title  string   `json:"title" bson:"title"`
	Pitch  string   `json:"pitch" bson:"pitch"`
	Points []string `json:"points" bson:"points"`
}

// LandingContent is the full localized landing page payload. Dir is "rtl"
// for Arabic and "ltr" otherwise so clients do not hardcode directionality.
type LandingContent struct {
	Lang      string    `json:"lang" bson:"lang"`
	Dir       string    `json:"dir" bson:"dir"`
	Hero      Hero      `json:"hero" bson:"hero"`
	Stats     []Stat    `json:"stats" bson:"stats"`
	Features  []Feature `json:"features" bson:"features"`
	Corporate Corporate `json:"corporate" bson:"corporate"`
}
