package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/osutil"
	"github.com/solosprint/sprint/internal/timeutil"
	"github.com/solosprint/sprint/internal/ui"
)

// printSummary writes the outcome of a finished session and its reflection.
func printSummary(w io.Writer, sess models.FocusSession, reflection string) {
	fmt.Fprintf(
		w,
		"%s (%s)\n\n",
		ui.Highlight("Focus session complete"),
		timeutil.FormatMinutes(sess.DurationMinutes),
	)

	row := func(label, value string) {
		fmt.Fprintf(w, "  %-14s%s\n", label, value)
	}

	if sess.TaskTitle != "" {
		row("Task", sess.TaskTitle)
	}

	row("Focus", fmt.Sprintf("%d%%", sess.FocusPercentage))
	row("Distraction", fmt.Sprintf("%d%%", sess.DistractionPercentage))
	row("Tab switches", fmt.Sprintf("%d", sess.TabSwitches))
	row("State", ui.State(sess.EmotionalState))

	fmt.Fprintf(w, "\n%s\n  %s\n", ui.Highlight("Reflection"), reflection)
}

// statusLine describes a running session for the status command.
func statusLine(sess *models.FocusSession, now time.Time) string {
	elapsed := max(now.Sub(sess.StartTime), 0)

	m, s := int(elapsed/time.Minute), int(elapsed%time.Minute/time.Second)

	label := "[Focus]"
	if sess.TaskTitle != "" {
		label = fmt.Sprintf("[Focus: %s]", sess.TaskTitle)
	}

	return fmt.Sprintf(
		"%s %02d:%02d · %d%% focus · %d tab switches · %s",
		ui.Green(label),
		m,
		s,
		sess.FocusPercentage,
		sess.TabSwitches,
		ui.State(sess.EmotionalState),
	)
}

// writeStatusFile replaces the status file with the latest snapshot.
func writeStatusFile(path string, sess models.FocusSession) (err error) {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	statusFile, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	writer := bufio.NewWriter(statusFile)

	if _, err = writer.Write(b); err != nil {
		return err
	}

	return writer.Flush()
}

// readStatusFile returns the snapshot in the status file, or nil if there is
// no status file.
func readStatusFile(path string) (*models.FocusSession, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var sess models.FocusSession

	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}
