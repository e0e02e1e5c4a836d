package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestPagesUnmarshalPreservesKeyOrder(t *testing.T) {
	var pages Pages
	if err := json.Unmarshal([]byte(`{"zeta":["hero"],"alpha":["jobs","faq"],"home":[]}`), &pages); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got, want := pages.Keys(), []string{"zeta", "alpha", "home"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	first, ok := pages.First()
	if !ok || first != "zeta" {
		t.Fatalf("First() = %q, %t", first, ok)
	}

	encoded, err := json.Marshal(pages)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(encoded), `{"zeta":["hero"],"alpha":["jobs","faq"],"home":[]}`; got != want {
		t.Fatalf("marshal = %s, want %s", got, want)
	}
}

func TestPagesUnmarshalLenientValues(t *testing.T) {
	var pages Pages
	if err := json.Unmarshal([]byte(`{"home":"hero","careers":["jobs",3,null,"faq"]}`), &pages); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	home, _ := pages.Get("home")
	if len(home) != 0 {
		t.Fatalf("non-array page should be empty, got %v", home)
	}
	careers, _ := pages.Get("careers")
	if want := []SectionID{SectionJobs, SectionFAQ}; !reflect.DeepEqual(careers, want) {
		t.Fatalf("careers = %v, want %v", careers, want)
	}
}

func TestPagesUnmarshalRejectsNonObject(t *testing.T) {
	for _, input := range []string{`[]`, `"home"`, `42`, `true`} {
		var pages Pages
		err := json.Unmarshal([]byte(input), &pages)
		if !errors.Is(err, ErrPagesNotObject) {
			t.Fatalf("Unmarshal(%s) err = %v, want ErrPagesNotObject", input, err)
		}
	}
}

func TestPagesSetAndDelete(t *testing.T) {
	var pages Pages
	pages.Set("home", nil)
	pages.Set("team", []SectionID{SectionTeam})
	pages.Set("home", []SectionID{SectionHero})

	if got, want := pages.Keys(), []string{"home", "team"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if !pages.Delete("home") {
		t.Fatalf("expected delete to report removal")
	}
	if pages.Delete("home") {
		t.Fatalf("second delete should be a no-op")
	}
	if got, want := pages.Keys(), []string{"team"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys after delete = %v, want %v", got, want)
	}
}

func TestPagesCloneIsIndependent(t *testing.T) {
	pages := PagesOf(PageEntry{Key: "home", Sections: []SectionID{SectionHero}})
	clone := pages.Clone()
	clone.Set("home", []SectionID{SectionJobs})

	original, _ := pages.Get("home")
	if !reflect.DeepEqual(original, []SectionID{SectionHero}) {
		t.Fatalf("clone mutated original: %v", original)
	}
}

func TestFormatPageKey(t *testing.T) {
	tests := map[string]string{
		"home":            "Home",
		"about-us":        "About Us",
		"life_at_company": "Life At Company",
		"":                "",
		"---":             "---",
	}
	for key, want := range tests {
		if got := FormatPageKey(key); got != want {
			t.Fatalf("FormatPageKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestBuilderStatePageLabel(t *testing.T) {
	state := DefaultBuilderState()
	state.PageLabels = map[string]string{"team": "Our People"}

	if got := state.PageLabel("team"); got != "Our People" {
		t.Fatalf("PageLabel(team) = %q", got)
	}
	if got := state.PageLabel("open-roles"); got != "Open Roles" {
		t.Fatalf("PageLabel(open-roles) = %q", got)
	}
}

func TestBuilderStateCurrentSections(t *testing.T) {
	state := DefaultBuilderState()
	state.Pages.Set("team", []SectionID{SectionTeam, SectionJobs})

	if got := state.CurrentSections("team"); !reflect.DeepEqual(got, DefaultSectionOrder) {
		t.Fatalf("single-page mode should render the flat order, got %v", got)
	}

	state.MultiPageLayout = true
	if got := state.CurrentSections("team"); !reflect.DeepEqual(got, []SectionID{SectionTeam, SectionJobs}) {
		t.Fatalf("multi-page mode should render the page list, got %v", got)
	}
}

func TestBuilderStateCloneIsDeep(t *testing.T) {
	state := DefaultBuilderState()
	state.PageLabels = map[string]string{"home": "Welcome"}
	clone := state.Clone()

	clone.SinglePageSectionOrder[0] = SectionFooter
	clone.Layout.HeroGradientStops[0].Color = "#000000"
	clone.PageLabels["home"] = "Changed"
	clone.Pages.Set("home", nil)

	if !reflect.DeepEqual(state.SinglePageSectionOrder, DefaultSectionOrder) {
		t.Fatalf("section order aliased: %v", state.SinglePageSectionOrder)
	}
	if state.Layout.HeroGradientStops[0].Color == "#000000" {
		t.Fatalf("gradient stops aliased")
	}
	if state.PageLabels["home"] != "Welcome" {
		t.Fatalf("page labels aliased")
	}
	if home, _ := state.Pages.Get("home"); len(home) == 0 {
		t.Fatalf("pages aliased")
	}
}

func TestNavigationVisibility(t *testing.T) {
	tests := []struct {
		nav         NavigationSettings
		header, bar bool
	}{
		{nav: NavigationSettings{Enabled: false, Style: NavBoth}},
		{nav: NavigationSettings{Enabled: true, Style: NavHeader}, header: true},
		{nav: NavigationSettings{Enabled: true, Style: NavSidebar}, bar: true},
		{nav: NavigationSettings{Enabled: true, Style: NavBoth}, header: true, bar: true},
		{nav: NavigationSettings{Enabled: true, Style: "Floating"}, header: true, bar: true},
	}
	for _, test := range tests {
		if got := test.nav.ShowsHeader(); got != test.header {
			t.Fatalf("%+v ShowsHeader = %t", test.nav, got)
		}
		if got := test.nav.ShowsSidebar(); got != test.bar {
			t.Fatalf("%+v ShowsSidebar = %t", test.nav, got)
		}
	}
}
