package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// memento is an opaque snapshot of editor state
type memento struct {
	text string
}

// textEditor is the originator; only it can read a memento's contents
type textEditor struct {
	text string
}

func (e *textEditor) Type(s string) {
	e.text += s
}

func (e *textEditor) Save() *memento {
	return &memento{text: e.text}
}

func (e *textEditor) Restore(m *memento) {
	e.text = m.text
}

// history is the caretaker; it stores mementos without inspecting them
type history struct {
	snapshots []*memento
}

func (h *history) Push(m *memento) {
	h.snapshots = append(h.snapshots, m)
}

func (h *history) Pop() *memento {
	if len(h.snapshots) == 0 {
		return nil
	}
	m := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return m
}

// NewMementoDemo creates the memento demo
func NewMementoDemo() catalog.Demo {
	return catalog.New(
		"memento",
		catalog.GroupBehavioral,
		"Snapshots editor state into opaque mementos for undo",
		func(w io.Writer) {
			editor := &textEditor{}
			undo := &history{}

			editor.Type("design ")
			undo.Push(editor.Save())

			editor.Type("patterns ")
			undo.Push(editor.Save())

			editor.Type("in Go")
			fmt.Fprintf(w, "current text: %q\n", editor.text)

			editor.Restore(undo.Pop())
			fmt.Fprintf(w, "after undo: %q\n", editor.text)

			editor.Restore(undo.Pop())
			fmt.Fprintf(w, "after undo: %q\n", editor.text)
		},
	)
}
