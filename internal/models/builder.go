package models

// SectionID identifies one block from the section catalog.
type SectionID string

const (
	SectionHero         SectionID = "hero"
	SectionAbout        SectionID = "about"
	SectionBenefits     SectionID = "benefits"
	SectionLocations    SectionID = "locations"
	SectionHiring       SectionID = "hiring"
	SectionFAQ          SectionID = "faq"
	SectionDEI          SectionID = "dei"
	SectionVideos       SectionID = "videos"
	SectionTestimonials SectionID = "testimonials"
	SectionTeam         SectionID = "team"
	SectionJobs         SectionID = "jobs"
	SectionAlerts       SectionID = "alerts"
	SectionApply        SectionID = "apply"
	SectionAnalytics    SectionID = "analytics"
	SectionFooter       SectionID = "footer"
)

// AllSectionIDs lists the closed set in catalog order.
var AllSectionIDs = []SectionID{
	SectionHero,
	SectionAbout,
	SectionBenefits,
	SectionLocations,
	SectionHiring,
	SectionFAQ,
	SectionDEI,
	SectionVideos,
	SectionTestimonials,
	SectionTeam,
	SectionJobs,
	SectionAlerts,
	SectionApply,
	SectionAnalytics,
	SectionFooter,
}

func (id SectionID) Valid() bool {
	for _, known := range AllSectionIDs {
		if id == known {
			return true
		}
	}
	return false
}

type FontScale string

const (
	FontScaleSmall   FontScale = "Small"
	FontScaleMedium  FontScale = "Medium"
	FontScaleLarge   FontScale = "Large"
	FontScaleDisplay FontScale = "Display"
)

type TypographySettings struct {
	HeadingFont string    `json:"headingFont" validate:"required"`
	BodyFont    string    `json:"bodyFont" validate:"required"`
	FontScale   FontScale `json:"fontScale" validate:"oneof=Small Medium Large Display"`
}

type ButtonStyle string

const (
	ButtonSolid   ButtonStyle = "solid"
	ButtonOutline ButtonStyle = "outline"
	ButtonPill    ButtonStyle = "pill"
	ButtonRounded ButtonStyle = "rounded"
)

type ButtonSettings struct {
	Style        ButtonStyle `json:"style" validate:"oneof=solid outline pill rounded"`
	CornerRadius int         `json:"cornerRadius" validate:"gte=0,lte=64"`
}

type SectionPadding string

const (
	PaddingCompact     SectionPadding = "compact"
	PaddingComfortable SectionPadding = "comfortable"
	PaddingSpacious    SectionPadding = "spacious"
)

type ContentWidth string

const (
	WidthNarrow   ContentWidth = "narrow"
	WidthStandard ContentWidth = "standard"
	WidthWide     ContentWidth = "wide"
	WidthFull     ContentWidth = "full"
)

type SectionRadius string

const (
	RadiusNone   SectionRadius = "none"
	RadiusSmall  SectionRadius = "small"
	RadiusMedium SectionRadius = "medium"
	RadiusLarge  SectionRadius = "large"
)

type CardShadow string

const (
	ShadowNone   CardShadow = "none"
	ShadowSubtle CardShadow = "subtle"
	ShadowMedium CardShadow = "medium"
	ShadowStrong CardShadow = "strong"
)

type SectionAnimation string

const (
	AnimationNone  SectionAnimation = "none"
	AnimationFade  SectionAnimation = "fade"
	AnimationSlide SectionAnimation = "slide"
	AnimationZoom  SectionAnimation = "zoom"
)

type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

type GradientStop struct {
	Color    string `json:"color" validate:"hex6"`
	Position int    `json:"position" validate:"gte=0,lte=100"`
}

type LayoutSettings struct {
	SectionPadding    SectionPadding   `json:"sectionPadding" validate:"oneof=compact comfortable spacious"`
	ContentWidth      ContentWidth     `json:"contentWidth" validate:"oneof=narrow standard wide full"`
	SectionRadius     SectionRadius    `json:"sectionRadius" validate:"oneof=none small medium large"`
	CardShadow        CardShadow       `json:"cardShadow" validate:"oneof=none subtle medium strong"`
	SectionAnimation  SectionAnimation `json:"sectionAnimation" validate:"oneof=none fade slide zoom"`
	HoverEffects      bool             `json:"hoverEffects"`
	HeroGradient      bool             `json:"heroGradient"`
	HeroGradientType  GradientType     `json:"heroGradientType" validate:"oneof=linear radial"`
	HeroGradientAngle int              `json:"heroGradientAngle" validate:"gte=0,lte=360"`
	HeroGradientStops []GradientStop   `json:"heroGradientStops" validate:"dive"`
}

type NavigationStyle string

const (
	NavHeader  NavigationStyle = "Header"
	NavSidebar NavigationStyle = "Sidebar"
	NavBoth    NavigationStyle = "Both"
)

type NavigationSettings struct {
	Enabled bool            `json:"enabled"`
	Style   NavigationStyle `json:"style" validate:"oneof=Header Sidebar Both"`
}

func DefaultNavigation() NavigationSettings {
	return NavigationSettings{Enabled: false, Style: NavBoth}
}

// ShowsHeader reports whether the header bar carries page links.
func (n NavigationSettings) ShowsHeader() bool {
	return n.Enabled && n.Style != NavSidebar
}

// ShowsSidebar reports whether a sidebar carries page links. Unknown styles
// render like Both.
func (n NavigationSettings) ShowsSidebar() bool {
	return n.Enabled && n.Style != NavHeader
}

// BuilderState is the whole configurable page. It is the unit of persistence
// and publishing.
type BuilderState struct {
	ThemeName              string             `json:"themeName"`
	Colors                 ThemeColors        `json:"colors"`
	Logo                   string             `json:"logo"`
	Typography             TypographySettings `json:"typography"`
	Buttons                ButtonSettings     `json:"buttons"`
	Layout                 LayoutSettings     `json:"layout"`
	Navigation             NavigationSettings `json:"navigation"`
	MultiPageLayout        bool               `json:"multiPageLayout"`
	SinglePageSectionOrder []SectionID        `json:"singlePageSectionOrder"`
	Pages                  Pages              `json:"pages"`
	PageLabels             map[string]string  `json:"pageLabels,omitempty"`
	ActivePage             string             `json:"activePage"`
}

// DefaultPageKey is used whenever a snapshot has no usable page.
const DefaultPageKey = "home"

// DefaultSectionOrder is the starting composition of a new page.
var DefaultSectionOrder = []SectionID{
	SectionHero,
	SectionAbout,
	SectionBenefits,
	SectionJobs,
	SectionApply,
	SectionFooter,
}

func DefaultBuilderState() BuilderState {
	order := append([]SectionID(nil), DefaultSectionOrder...)
	pages := NewPages()
	pages.Set(DefaultPageKey, order)

	return BuilderState{
		ThemeName: DefaultThemeName,
		Colors:    DefaultColors(),
		Logo:      "",
		Typography: TypographySettings{
			HeadingFont: "Inter",
			BodyFont:    "Inter",
			FontScale:   FontScaleMedium,
		},
		Buttons: ButtonSettings{
			Style:        ButtonSolid,
			CornerRadius: 8,
		},
		Layout: LayoutSettings{
			SectionPadding:    PaddingComfortable,
			ContentWidth:      WidthStandard,
			SectionRadius:     RadiusMedium,
			CardShadow:        ShadowSubtle,
			SectionAnimation:  AnimationFade,
			HoverEffects:      true,
			HeroGradient:      true,
			HeroGradientType:  GradientLinear,
			HeroGradientAngle: 135,
			HeroGradientStops: []GradientStop{
				{Color: defaultColorPrimary, Position: 0},
				{Color: defaultColorSecondary, Position: 100},
			},
		},
		Navigation:             DefaultNavigation(),
		MultiPageLayout:        false,
		SinglePageSectionOrder: append([]SectionID(nil), DefaultSectionOrder...),
		Pages:                  pages,
		ActivePage:             DefaultPageKey,
	}
}

// Clone returns a deep copy so edits never alias a stored snapshot.
func (s BuilderState) Clone() BuilderState {
	out := s
	if s.SinglePageSectionOrder != nil {
		out.SinglePageSectionOrder = append([]SectionID{}, s.SinglePageSectionOrder...)
	}
	if s.Layout.HeroGradientStops != nil {
		out.Layout.HeroGradientStops = append([]GradientStop{}, s.Layout.HeroGradientStops...)
	}
	if s.PageLabels != nil {
		out.PageLabels = make(map[string]string, len(s.PageLabels))
		for key, label := range s.PageLabels {
			out.PageLabels[key] = label
		}
	}
	out.Pages = s.Pages.Clone()
	return out
}

// CurrentSections returns the sections rendered for a page. Single-page mode
// always renders the flat order; an unset order falls back to the page list.
func (s BuilderState) CurrentSections(page string) []SectionID {
	if !s.MultiPageLayout && s.SinglePageSectionOrder != nil {
		return s.SinglePageSectionOrder
	}
	sections, _ := s.Pages.Get(page)
	return sections
}

// SetCurrentSections replaces the list CurrentSections would return.
func (s *BuilderState) SetCurrentSections(page string, sections []SectionID) {
	if !s.MultiPageLayout && s.SinglePageSectionOrder != nil {
		s.SinglePageSectionOrder = sections
		return
	}
	s.Pages.Set(page, sections)
}

// PageLabel returns the display label for a page key.
func (s BuilderState) PageLabel(key string) string {
	if label, ok := s.PageLabels[key]; ok && label != "" {
		return label
	}
	return FormatPageKey(key)
}
