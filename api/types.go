package api

// Rendered wraps the WordPress "rendered" content envelope. Raw is only
// populated when a resource is fetched with context=edit.
type Rendered struct {
	Rendered string `json:"rendered"`
	Raw      string `json:"raw,omitempty"`
}

// Post represents a WordPress post.
type Post struct {
	ID            int      `json:"id"`
	Date          string   `json:"date,omitempty"`
	Modified      string   `json:"modified,omitempty"`
	Slug          string   `json:"slug,omitempty"`
	Status        string   `json:"status,omitempty"`
	Link          string   `json:"link,omitempty"`
	Title         Rendered `json:"title"`
	Content       Rendered `json:"content,omitempty"`
	Excerpt       Rendered `json:"excerpt,omitempty"`
	Author        int      `json:"author,omitempty"`
	FeaturedMedia int      `json:"featured_media,omitempty"`
	Categories    []int    `json:"categories,omitempty"`
	Tags          []int    `json:"tags,omitempty"`
}

// Media represents an item in the media library.
type Media struct {
	ID        int      `json:"id"`
	Date      string   `json:"date,omitempty"`
	Slug      string   `json:"slug,omitempty"`
	Link      string   `json:"link,omitempty"`
	Title     Rendered `json:"title"`
	AltText   string   `json:"alt_text,omitempty"`
	MediaType string   `json:"media_type,omitempty"`
	MimeType  string   `json:"mime_type,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
}

// Term represents a taxonomy term (category or tag).
type Term struct {
	ID          int    `json:"id"`
	Count       int    `json:"count,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Taxonomy    string `json:"taxonomy,omitempty"`
	Description string `json:"description,omitempty"`
}

// User represents a WordPress user.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// CreatePostRequest is the request body for creating a post. Title and
// content are plain strings on the way in; the API returns them wrapped
// in the rendered envelope.
type CreatePostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status,omitempty"`
	Slug          string `json:"slug,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Categories    []int  `json:"categories,omitempty"`
	Tags          []int  `json:"tags,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

// UpdatePostRequest is the request body for updating a post. Zero-value
// fields are omitted and left untouched on the server.
type UpdatePostRequest struct {
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Status        string `json:"status,omitempty"`
	Slug          string `json:"slug,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Categories    []int  `json:"categories,omitempty"`
	Tags          []int  `json:"tags,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

// UpdateMediaRequest is the request body for updating a media item.
type UpdateMediaRequest struct {
	Title   string `json:"title,omitempty"`
	AltText string `json:"alt_text,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CreateTermRequest is the request body for creating a taxonomy term.
type CreateTermRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse represents a WordPress REST API error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
	StatusCode int `json:"-"`
}

func (e *ErrorResponse) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
