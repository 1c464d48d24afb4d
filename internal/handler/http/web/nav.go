package web

const (
	sidebarCookie    = "sidebar_state"
	sidebarExpanded  = "expanded"
	sidebarCollapsed = "collapsed"
)

// NavItem - пункт бокового меню
type NavItem struct {
	Title string
	URL   string
	Badge string
}

// NavGroup - группа пунктов бокового меню
type NavGroup struct {
	Label string
	Items []NavItem
}

func navGroups() []NavGroup {
	return []NavGroup{
		{Label: "Navigation", Items: []NavItem{
			{Title: "Dashboard", URL: "/"},
			{Title: "Live Map", URL: "/map"},
			{Title: "Report Hazard", URL: "/report"},
			{Title: "My Reports", URL: "/reports"},
		}},
		{Label: "Monitoring", Items: []NavItem{
			{Title: "Real-time Data", URL: "/monitoring"},
			{Title: "Social Media", URL: "/social", Badge: "Live"},
			{Title: "Analytics", URL: "/analytics"},
			{Title: "Hotspots", URL: "/hotspots"},
		}},
		{Label: "Management", Items: []NavItem{
			{Title: "Users", URL: "/users"},
			{Title: "Settings", URL: "/settings"},
		}},
	}
}

// placeholder - раздел, который пока показывает только заголовок
type placeholder struct {
	Path  string
	Title string
}

func placeholders() []placeholder {
	return []placeholder{
		{Path: "/reports", Title: "My Reports"},
		{Path: "/monitoring", Title: "Real-time Data"},
		{Path: "/analytics", Title: "Analytics"},
		{Path: "/hotspots", Title: "Hotspots"},
		{Path: "/users", Title: "User Management"},
		{Path: "/settings", Title: "Settings"},
	}
}

// Header - содержимое верхней панели
type Header struct {
	Brand             string
	Subtitle          string
	Logo              string
	SearchPlaceholder string
	Notifications     int
}

func defaultHeader() Header {
	return Header{
		Brand:             "Ocean Watch",
		Subtitle:          "INCOIS Monitoring System",
		Logo:              "OW",
		SearchPlaceholder: "Search reports, locations, events...",
		Notifications:     3,
	}
}
