package tui

type Category struct {
	ID          string
	Name        string
	Description string
}

var Categories = []Category{
	{ID: "theme", Name: "Theme", Description: "Manifest location and source maps"},
	{ID: "server", Name: "Server", Description: "Listen address, URL prefix and timeouts"},
	{ID: "cache", Name: "Cache", Description: "Artifact store backend and TTL"},
	{ID: "build", Name: "Build", Description: "Output directory and workers for build"},
	{ID: "logging", Name: "Logging", Description: "Log level and format"},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

func GetCategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
