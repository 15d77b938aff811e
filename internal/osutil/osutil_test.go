package osutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	testCases := []struct {
		name string
		line string
		args []string
	}{
		{
			name: "empty line",
			line: "",
		},
		{
			name: "simple command",
			line: "notify-send done",
			args: []string{"notify-send", "done"},
		},
		{
			name: "quoted argument",
			line: `echo "focus session ended"`,
			args: []string{"echo", "focus session ended"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := Command(tc.line)
			assert.NoError(t, err)

			if tc.args == nil {
				assert.Nil(t, cmd)
				return
			}

			if diff := cmp.Diff(tc.args, cmd.Args); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandUnterminatedQuote(t *testing.T) {
	_, err := Command(`echo "oops`)
	assert.True(t, errors.Is(err, errParseCommand))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
