package autotag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Editor presents one suggested tag set for free-text editing. EditTags
// returns the edited comma-separated text and true, or false when the user
// cancelled. Cancellation is not an error.
type Editor interface {
	EditTags(title, initial string) (string, bool)
}

// TerminalEditor reads edits line by line from an interactive terminal.
type TerminalEditor struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalEditor creates a TerminalEditor on stdin/stdout.
func NewTerminalEditor() *TerminalEditor {
	return &TerminalEditor{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// StdinIsTerminal reports whether stdin is an interactive terminal. When it
// is not, the preview step runs without an editor and keeps every suggestion
// unchanged.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EditTags implements Editor. An empty line accepts the suggestion as is;
// end of input cancels.
func (e *TerminalEditor) EditTags(title, initial string) (string, bool) {
	fmt.Fprintf(e.out, "\nTitle:\n  %s\nSuggested tags: %s\n", title, initial)
	fmt.Fprint(e.out, "Edit tags as a comma-separated list (Enter keeps the suggestion, Ctrl-D cancels): ")

	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(e.out)
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return initial, true
	}
	return line, true
}

// PreviewAndEdit runs each suggestion through the editor. Cancellation keeps
// the original suggested tags; it never clears them. A nil editor means the
// environment has no prompt facility: the condition is logged and every
// suggestion is kept unchanged, so a batch never fails for lack of a
// terminal.
func PreviewAndEdit(suggestions []TagSuggestion, records []RecordMetadata, editor Editor, log zerolog.Logger) []TagSuggestion {
	titles := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.Key != "" {
			titles[rec.Key] = rec.Title
		}
	}

	if editor == nil {
		log.Warn().Msg("no interactive prompt available; keeping suggested tags unchanged")
		return suggestions
	}

	edited := make([]TagSuggestion, 0, len(suggestions))
	for _, sug := range suggestions {
		title := titles[sug.RecordKey]
		if title == "" {
			title = "[unknown title]"
		}

		raw, ok := editor.EditTags(title, strings.Join(sug.Tags, ", "))
		if !ok {
			edited = append(edited, sug)
			continue
		}
		edited = append(edited, TagSuggestion{
			RecordKey: sug.RecordKey,
			Tags:      SplitTags(raw),
		})
	}
	return edited
}

// SplitTags parses comma-separated user input into trimmed, non-empty tags.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
