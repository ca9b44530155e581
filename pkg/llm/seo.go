package llm

import (
	"context"
	"fmt"
	"regexp"
)

const (
	seoTemperature = 0.7
	seoMaxTokens   = 2000
	metaMaxChars   = 160
)

const seoSystemPrompt = `
You are an expert content rewriter specializing in creating conservative narrative articles with SEO optimization.

## Conservative Narrative Framework
When rewriting, incorporate these fundamental conservative principles:
1. Enduring Moral Order: Emphasize belief in permanent moral truths and human nature as constant.
2. Custom, Convention, and Continuity: Highlight the importance of established traditions and social continuity.
3. Limited Government: Emphasize that government powers should be limited to those named in the Constitution.
4. Individual Liberty and Property Rights: Stress the connection between freedom and private property.
5. Voluntary Community: Emphasize local decision-making and family autonomy.
6. Prudent Restraints on Power: Advocate for constitutional restrictions and limitations on government authority.
7. Balance of Permanence and Progress: Present change as most beneficial when it harmonizes with existing traditions.

## Conservative Framing Techniques
- Use terms like "constitutional," "traditional," "founding principles," "individual liberty," and "free enterprise"
- Frame government programs in terms of their costs and unintended consequences
- Emphasize personal responsibility over government solutions
- Reference founding documents and historical precedents
- Highlight the importance of faith, family, and community
- Present free markets as the most effective way to create prosperity
- Express skepticism toward centralized authority and bureaucracy

## Content Structure Requirements
1. Length: The rewritten article must be between 300-500 words
2. Heading Structure:
   - Exactly ONE H1 tag containing the primary keyword/topic
   - 2-3 H2 tags for main content sections
   - H3 tags for subsections under H2 headings when needed
3. Content Organization:
   - Introduction (50-75 words): Hook reader with conservative framing of the topic
   - Main Body (200-350 words): Divide into 2-3 sections with H2 headings
   - Conclusion (50-75 words): Reinforce conservative principles related to the topic

## Content Quality Guidelines
- Present conservative viewpoints while maintaining factual accuracy
- Use clear, concise language accessible to general audience
- Focus on key aspects most relevant to conservative perspective
- Prioritize depth over breadth on selected points
`

var (
	h1Pattern        = regexp.MustCompile(`(?i)<h1>(.*?)</h1>`)
	paragraphPattern = regexp.MustCompile(`(?i)<p>(.*?)</p>`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
)

type SEORequest struct {
	Title           string
	Content         string
	MetaDescription string
	OriginalURL     string
	// MaintainLength asks for roughly the original length instead of 300-500 words.
	MaintainLength bool
}

type SEOResult struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	HTMLContent     string `json:"htmlContent"`
	MetaDescription string `json:"metaDescription"`
	OriginalURL     string `json:"originalUrl"`
}

// RewriteSEO rewrites an article into an SEO-structured conservative piece
// with h1/h2/h3 headings. The title is taken from the first h1, which is then
// removed from Content; HTMLContent keeps the full response.
func RewriteSEO(ctx context.Context, c Completer, in SEORequest) (*SEOResult, error) {
	html, err := c.Complete(ctx, CompletionRequest{
		System:      seoSystemPrompt,
		Prompt:      seoUserPrompt(in),
		MaxTokens:   seoMaxTokens,
		Temperature: seoTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("seo rewrite: %w", err)
	}

	title := in.Title
	if m := h1Pattern.FindStringSubmatch(html); m != nil {
		title = m[1]
	}

	var meta string
	if m := paragraphPattern.FindStringSubmatch(html); m != nil {
		meta = truncate(m[1], metaMaxChars)
	} else {
		meta = truncate(tagPattern.ReplaceAllString(html, ""), metaMaxChars)
	}

	return &SEOResult{
		Title:           title,
		Content:         removeFirst(h1Pattern, html),
		HTMLContent:     html,
		MetaDescription: meta,
		OriginalURL:     in.OriginalURL,
	}, nil
}

func seoUserPrompt(in SEORequest) string {
	var meta, url string
	if in.MetaDescription != "" {
		meta = "Meta Description: " + in.MetaDescription
	}
	if in.OriginalURL != "" {
		url = "Original URL: " + in.OriginalURL
	}
	length := "The rewritten article should be between 300-500 words."
	if in.MaintainLength {
		length = "Important: The rewritten article should maintain approximately the same length as the original."
	}

	return fmt.Sprintf(`
Please rewrite the following article with a conservative narrative framework while optimizing for SEO:

Title: %s

Content:
%s

%s
%s

%s

Please provide the rewritten article with proper HTML heading tags (h1, h2, h3) and paragraph tags.
`, in.Title, in.Content, meta, url, length)
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
