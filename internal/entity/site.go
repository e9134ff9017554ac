package entity

// Site holds the global site settings used in feed heads.
type Site struct {
	BaseURL         string
	Subtitle        string
	LongDescription string
}

// RenderedItem is one feed entry rendered for a specific feed definition.
type RenderedItem struct {
	Title   string
	Content string
	Text    string
	// Enclosure URL.
	Filename string
	// Enclosure size in bytes, empty when not reported.
	Filesize string
	URL      string
	Date     string
	Image    string
}

// Fields maps item template placeholders to their values.
func (i RenderedItem) Fields() map[string]string {
	return map[string]string{
		"title":    i.Title,
		"content":  i.Content,
		"text":     i.Text,
		"filename": i.Filename,
		"filesize": i.Filesize,
		"url":      i.URL,
		"date":     i.Date,
		"image":    i.Image,
	}
}
