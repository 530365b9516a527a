package content

// Content is the marketing copy rendered by the landing page.
type Content struct {
	Brand        string       `json:"brand" yaml:"brand"`
	Copyright    string       `json:"copyright" yaml:"copyright"`
	Nav          []Link       `json:"nav" yaml:"nav"`
	Hero         Hero         `json:"hero" yaml:"hero"`
	Features     Features     `json:"features" yaml:"features"`
	AI           AISection    `json:"ai" yaml:"ai"`
	Dashboard    Dashboard    `json:"dashboard" yaml:"dashboard"`
	Testimonials Testimonials `json:"testimonials" yaml:"testimonials"`
	CTA          CTA          `json:"cta" yaml:"cta"`
	Footer       Footer       `json:"footer" yaml:"footer"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Gradient is a two-stop linear gradient.
type Gradient struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type Stat struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
}

type ProgressCard struct {
	Title   string `json:"title" yaml:"title"`
	Value   string `json:"value" yaml:"value"`
	Caption string `json:"caption" yaml:"caption"`
}

type Hero struct {
	Badge     string       `json:"badge" yaml:"badge"`
	Title     string       `json:"title" yaml:"title"`
	Highlight string       `json:"highlight" yaml:"highlight"`
	Blurb     string       `json:"blurb" yaml:"blurb"`
	Primary   Link         `json:"primary" yaml:"primary"`
	Secondary Link         `json:"secondary" yaml:"secondary"`
	Stats     []Stat       `json:"stats" yaml:"stats"`
	Progress  ProgressCard `json:"progress" yaml:"progress"`
}

type Feature struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Gradient    Gradient `json:"gradient" yaml:"gradient"`
}

type Features struct {
	Title string    `json:"title" yaml:"title"`
	Blurb string    `json:"blurb" yaml:"blurb"`
	Items []Feature `json:"items" yaml:"items"`
}

type AICard struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Alt         string   `json:"alt" yaml:"alt"`
	Gradient    Gradient `json:"gradient" yaml:"gradient"`
}

type AISection struct {
	Badge string   `json:"badge" yaml:"badge"`
	Title string   `json:"title" yaml:"title"`
	Blurb string   `json:"blurb" yaml:"blurb"`
	Cards []AICard `json:"cards" yaml:"cards"`
}

type SidebarItem struct {
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon" yaml:"icon"`
	Active bool   `json:"active" yaml:"active"`
}

type StatCard struct {
	Title    string   `json:"title" yaml:"title"`
	Value    string   `json:"value" yaml:"value"`
	Trend    string   `json:"trend" yaml:"trend"`
	Percent  int      `json:"percent" yaml:"percent"`
	Goal     string   `json:"goal" yaml:"goal"`
	Accent   string   `json:"accent" yaml:"accent"`
	Gradient Gradient `json:"gradient" yaml:"gradient"`
}

// Weekly holds one bar height (percent of the chart) per day.
type Weekly struct {
	Title     string     `json:"title" yaml:"title"`
	Days      []string   `json:"days" yaml:"days"`
	Values    []int      `json:"values" yaml:"values"`
	Gradients []Gradient `json:"gradients" yaml:"gradients"`
}

// Bar is one rendered weekly activity column.
type Bar struct {
	Day      string   `json:"day"`
	Height   int      `json:"height"`
	Gradient Gradient `json:"gradient"`
}

// Bars pairs values with day labels. Gradients cycle by index.
func (w Weekly) Bars() []Bar {
	bars := make([]Bar, len(w.Values))
	for i, value := range w.Values {
		bar := Bar{Height: value}
		if i < len(w.Days) {
			bar.Day = w.Days[i]
		}
		if len(w.Gradients) > 0 {
			bar.Gradient = w.Gradients[i%len(w.Gradients)]
		}
		bars[i] = bar
	}
	return bars
}

type Coach struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Label   string `json:"label" yaml:"label"`
	Workout string `json:"workout" yaml:"workout"`
	Targets string `json:"targets" yaml:"targets"`
}

type Dashboard struct {
	Title   string        `json:"title" yaml:"title"`
	Blurb   string        `json:"blurb" yaml:"blurb"`
	Heading string        `json:"heading" yaml:"heading"`
	Status  string        `json:"status" yaml:"status"`
	Sidebar []SidebarItem `json:"sidebar" yaml:"sidebar"`
	Stats   []StatCard    `json:"stats" yaml:"stats"`
	Weekly  Weekly        `json:"weekly" yaml:"weekly"`
	Coach   Coach         `json:"coach" yaml:"coach"`
}

// Testimonial is one carousel slide.
type Testimonial struct {
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Avatar  string `json:"avatar" yaml:"avatar"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// Initial is the avatar fallback letter.
func (t Testimonial) Initial() string {
	for _, r := range t.Name {
		return string(r)
	}
	return ""
}

type Testimonials struct {
	Title string        `json:"title" yaml:"title"`
	Blurb string        `json:"blurb" yaml:"blurb"`
	Items []Testimonial `json:"items" yaml:"items"`
}

type CTA struct {
	Title     string `json:"title" yaml:"title"`
	Blurb     string `json:"blurb" yaml:"blurb"`
	Primary   Link   `json:"primary" yaml:"primary"`
	Secondary Link   `json:"secondary" yaml:"secondary"`
}

type Footer struct {
	Links []Link `json:"links" yaml:"links"`
}
