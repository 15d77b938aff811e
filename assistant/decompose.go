package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// FallbackTasks is used whenever a goal cannot be decomposed.
var FallbackTasks = []string{
	"Research and gather information",
	"Create a plan or outline",
	"Execute the main task",
	"Review and refine the work",
}

const decomposeSystemPrompt = "You are a helpful assistant that breaks down goals into 3-5 actionable tasks. Return only a JSON array of task strings, nothing else."

// Decomposer breaks a goal into task titles.
type Decomposer struct {
	llm    Completer
	logger *slog.Logger
}

// NewDecomposer returns a Decomposer backed by llm.
func NewDecomposer(llm Completer, logger *slog.Logger) *Decomposer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Decomposer{llm: llm, logger: logger}
}

// Decompose returns the ordered task titles for goal. Only a blank goal is
// an error; API failures and unparsable replies yield FallbackTasks.
func (d *Decomposer) Decompose(ctx context.Context, goal string) ([]string, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrValidation.Fmt("goal is required")
	}

	reply, err := d.llm.Complete(ctx, Prompt{
		System:      decomposeSystemPrompt,
		User:        fmt.Sprintf("Break down this goal into 3-5 actionable tasks: %q", goal),
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		logFallback(d.logger, "decompose", err)
		return fallbackTasks(), nil
	}

	tasks, err := parseTasks(reply)
	if err != nil {
		logFallback(d.logger, "decompose", ErrExternalService.Wrap(err))
		return fallbackTasks(), nil
	}

	return tasks, nil
}

func parseTasks(reply string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &raw); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}

	tasks := make([]string, 0, len(raw))

	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			tasks = append(tasks, v)
		}
	}

	return tasks, nil
}

func fallbackTasks() []string {
	return append([]string(nil), FallbackTasks...)
}

// logFallback records a masked assistant failure. A missing key is an
// expected configuration, not a failure worth a warning.
func logFallback(logger *slog.Logger, op string, err error) {
	if errors.Is(err, errNoAPIKey) {
		logger.Info("assistant not configured, using fallback", slog.String("op", op))
		return
	}

	logger.Warn(
		"assistant request failed, using fallback",
		slog.String("op", op),
		slog.Any("error", err),
	)
}
