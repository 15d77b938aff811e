package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/solosprint/sprint/internal/models"
)

const (
	minRelevance = 1
	maxRelevance = 10

	discoverSystemPrompt = "You are an AI assistant that finds relevant resources for tasks. Return only a JSON array of objects with 'url', 'title', and 'relevance' (1-10) fields."
)

// Discoverer finds resources for a task.
type Discoverer struct {
	llm    Completer
	logger *slog.Logger
}

// NewDiscoverer returns a Discoverer backed by llm.
func NewDiscoverer(llm Completer, logger *slog.Logger) *Discoverer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Discoverer{llm: llm, logger: logger}
}

// Discover returns resources for taskTitle ranked by relevance. Without
// credentials, or when the reply is unusable, a keyword matched fallback list
// is returned instead.
func (d *Discoverer) Discover(
	ctx context.Context,
	taskTitle, goal string,
) ([]models.Resource, error) {
	if strings.TrimSpace(taskTitle) == "" || strings.TrimSpace(goal) == "" {
		return nil, ErrValidation.Fmt("task title and goal are required")
	}

	reply, err := d.llm.Complete(ctx, Prompt{
		System: discoverSystemPrompt,
		User: fmt.Sprintf(
			"Find 3-5 relevant online resources for this task: %q related to goal: %q. Focus on high-quality, educational resources.",
			taskTitle,
			goal,
		),
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		logFallback(d.logger, "discover", err)
		return FallbackResources(taskTitle), nil
	}

	resources, err := parseResources(reply)
	if err != nil {
		logFallback(d.logger, "discover", ErrExternalService.Wrap(err))
		return FallbackResources(taskTitle), nil
	}

	if len(resources) == 0 {
		return FallbackResources(taskTitle), nil
	}

	return resources, nil
}

func parseResources(reply string) ([]models.Resource, error) {
	var raw []models.Resource
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &raw); err != nil {
		return nil, fmt.Errorf("parse resources: %w", err)
	}

	resources := make([]models.Resource, 0, len(raw))

	for _, r := range raw {
		r.URL = strings.TrimSpace(r.URL)
		if r.URL == "" {
			continue
		}

		r.Relevance = min(max(r.Relevance, minRelevance), maxRelevance)
		r.Source = models.SourceAISearch

		resources = append(resources, r)
	}

	rank(resources)

	return resources, nil
}

// rank orders resources by relevance, then by title in natural order.
func rank(resources []models.Resource) {
	slices.SortStableFunc(resources, func(a, b models.Resource) int {
		if a.Relevance != b.Relevance {
			return b.Relevance - a.Relevance
		}

		switch {
		case natural.Less(a.Title, b.Title):
			return -1
		case natural.Less(b.Title, a.Title):
			return 1
		default:
			return 0
		}
	})
}

// FallbackResources returns a fixed resource list chosen by keywords in
// taskTitle.
func FallbackResources(taskTitle string) []models.Resource {
	title := strings.ToLower(taskTitle)

	switch {
	case containsAny(title, "react", "javascript", "web"):
		return []models.Resource{
			fallback("https://developer.mozilla.org/en-US/docs/Web/JavaScript", "MDN JavaScript Documentation", 9),
			fallback("https://react.dev/", "React Official Documentation", 9),
			fallback("https://stackoverflow.com/questions/tagged/react", "Stack Overflow React Questions", 8),
		}
	case containsAny(title, "python", "programming"):
		return []models.Resource{
			fallback("https://docs.python.org/3/", "Python Official Documentation", 9),
			fallback("https://realpython.com/", "Real Python Tutorials", 8),
			fallback("https://stackoverflow.com/questions/tagged/python", "Stack Overflow Python Questions", 8),
		}
	default:
		return []models.Resource{
			fallback("https://developer.mozilla.org", "MDN Web Docs", 8),
			fallback("https://stackoverflow.com", "Stack Overflow", 7),
			fallback("https://github.com", "GitHub", 6),
		}
	}
}

func fallback(url, title string, relevance int) models.Resource {
	return models.Resource{
		URL:       url,
		Title:     title,
		Relevance: relevance,
		Source:    models.SourceAISearch,
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
