package handler

import "github.com/Click-Movement/ContentSoftware/internal/persona"

type RewriteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Persona string `json:"persona"`
	Model   string `json:"model"`
}

type RewriteResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Persona string `json:"persona"`
	Model   string `json:"model,omitempty"`
}

type ContentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type ContentResponse struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"metaDescription,omitempty"`
	URL             string `json:"url"`
}

type PublishDirectRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	WPURL    string `json:"wpUrl"`
	Username string `json:"username"`
	Password string `json:"password"`
	Persona  string `json:"persona"`
	Format   string `json:"format"`
}

type PublishDirectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  int    `json:"postId"`
	EditURL string `json:"editUrl"`
	Persona string `json:"persona,omitempty"`
}

type PublishRequest struct {
	SourceURL string `json:"sourceUrl"`
	WPURL     string `json:"wpUrl"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type PublishResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  int    `json:"postId"`
	PostURL string `json:"postUrl"`
}

type ImageRequest struct {
	Query string `json:"query"`
}

type PersonasResponse struct {
	Personas []persona.Persona `json:"personas"`
	Default  string            `json:"default"`
	Models   []string          `json:"models"`
}

type RewriteItemResponse struct {
	ID              string `json:"id"`
	SourceArticleID *int64 `json:"sourceArticleId,omitempty"`
	Persona         string `json:"persona"`
	Mode            string `json:"mode"`
	Model           string `json:"model,omitempty"`
	OriginalTitle   string `json:"originalTitle"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	CreatedAt       string `json:"createdAt"`
}

type RewriteListResponse struct {
	Rewrites []RewriteItemResponse `json:"rewrites"`
	Total    int                   `json:"total"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}
