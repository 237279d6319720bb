package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// PageService fetches a bookmarked page and extracts its title, used by the
// dashboard to prefill the add form. Failures here never block a save.
type PageService struct {
	client *http.Client
}

func NewPageService(client *http.Client) (*PageService, error) {
	if client == nil {
		client = http.DefaultClient
	}

	return &PageService{client: client}, nil
}

func (s *PageService) Title(ctx context.Context, pageURL string) (string, error) {
	if s == nil {
		return "", errors.New("page service is nil")
	}
	if s.client == nil {
		return "", errors.New("http client is nil")
	}
	if strings.TrimSpace(pageURL) == "" {
		return "", errors.New("url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("read response: %w", readErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close response: %w", closeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	title, err := extractTitle(string(body))
	if err != nil {
		return "", err
	}

	return title, nil
}

func extractTitle(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", errors.New("html is empty")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var title string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if title != "" {
			return
		}
		if node.Type == html.ElementNode && node.Data == "title" {
			var builder strings.Builder
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				if child.Type == html.TextNode {
					builder.WriteString(child.Data)
				}
			}
			title = strings.TrimSpace(builder.String())
			return
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if title == "" {
		return "", errors.New("page has no title")
	}

	return title, nil
}
