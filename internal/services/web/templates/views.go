package templates

// BreadcrumbItem is one link in a navigation trail. The last item has no URL.
type BreadcrumbItem struct {
	Label string
	URL   string
}

// StatusBadge is a localized status label with its style.
type StatusBadge struct {
	Label string
	Tone  string
}

// Stat is one value tile with its caption.
type Stat struct {
	Value string
	Label string
}

// ApartmentCard summarizes one listing on the index page.
type ApartmentCard struct {
	Name          string
	URL           string
	Neighborhood  string
	Status        StatusBadge
	Rent          string
	Stats         []Stat
	AvailableFrom string
	Features      []string
	Facets        CardFacets
}

// CardFacets are the raw filter values of a card, matched client-side.
type CardFacets struct {
	Bedrooms     int
	Neighborhood string
	Status       string
}

// FilterOption is one selectable value. URL navigates to the resulting filter state.
type FilterOption struct {
	Value    string
	Label    string
	URL      string
	Selected bool
}

// FilterControl is one filter selector.
type FilterControl struct {
	Name    string
	Label   string
	Options []FilterOption
}

// IndexView is the listing index page.
type IndexView struct {
	Action   string
	Filters  []FilterControl
	Filtered bool
	ClearURL string
	Shown    int
	Total    int
	Cards    []ApartmentCard
}

// Detail is one labelled fact in the price card.
type Detail struct {
	Label string
	Value string
}

// DetailView is the apartment detail page.
type DetailView struct {
	Name             string
	Neighborhood     string
	Status           StatusBadge
	BackURL          string
	Breadcrumbs      []BreadcrumbItem
	Stats            []Stat
	Description      string
	Amenities        []string
	NeighborhoodInfo string
	Rent             string
	Details          []Detail
	Features         []string
}
