package slider2d

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
)

// EventType identifies the kind of a scripted input event.
type EventType string

const (
	// EventDrag is a pointer drag. Its path lists the translations relative to the
	// press position; the last one releases the handle.
	EventDrag EventType = "drag"
	// EventTap is a single tap at a canvas position, origin at the top-left corner.
	EventTap EventType = "tap"
	// EventDoubleTap resets the handle to the canvas center.
	EventDoubleTap EventType = "doubletap"
	// EventResize changes the canvas extent.
	EventResize EventType = "resize"
	// EventCancel is a drag abandoned before release, like a drag without its last step.
	EventCancel EventType = "cancel"
)

// Phase names the step of an event a frame was recorded at.
type Phase string

const (
	PhaseChange Phase = "change"
	PhaseEnd    Phase = "end"
	PhaseCancel Phase = "cancel"
)

// Event is a single scripted input event.
type Event struct {
	Type EventType `json:"type"`

	// Path and Free apply to drag and cancel events.
	Path [][2]float64 `json:"path,omitempty"`
	Free bool         `json:"free,omitzero"`

	// X and Y apply to tap events.
	X float64 `json:"x,omitzero"`
	Y float64 `json:"y,omitzero"`

	// Width and Height apply to resize events.
	Width  float64 `json:"width,omitzero"`
	Height float64 `json:"height,omitzero"`
}

// Frame is the state of the control recorded after an event step.
type Frame struct {
	Index   int       `json:"index"`
	Event   EventType `json:"event"`
	Phase   Phase     `json:"phase,omitempty"`
	Offset  Point     `json:"offset"`
	Snapped bool      `json:"snapped"`
	Output  Point     `json:"output"`
}

// ReadScript decodes a JSON array of events. Unknown members are rejected.
func ReadScript(r io.Reader) ([]Event, error) {
	var events []Event
	if err := json.UnmarshalRead(r, &events, json.RejectUnknownMembers(true)); err != nil {
		return nil, errors.Wrap(err, "could not decode the event script")
	}
	return events, nil
}

// WriteTrace encodes the recorded frames as an indented JSON array.
func WriteTrace(w io.Writer, frames []Frame) error {
	if frames == nil {
		frames = []Frame{}
	}
	if err := json.MarshalWrite(w, frames, jsontext.WithIndent("  ")); err != nil {
		return errors.Wrap(err, "could not encode the trace")
	}
	return nil
}

// Replay feeds the events to the controller in order and records a frame
// after every step. It stops at the first invalid event.
func Replay(c *Controller, events []Event) ([]Frame, error) {
	var frames []Frame

	record := func(i int, ev Event, phase Phase, snap Snapshot) {
		frames = append(frames, Frame{
			Index:   i,
			Event:   ev.Type,
			Phase:   phase,
			Offset:  snap.Offset,
			Snapped: snap.Snapped,
			Output:  snap.Output,
		})
	}

	for i, ev := range events {
		switch ev.Type {
		case EventDrag:
			if len(ev.Path) == 0 {
				return frames, errors.Errorf("event %d: drag without a path", i)
			}
			sticky := !ev.Free
			c.OnDragBegin()

			last := len(ev.Path) - 1
			for _, p := range ev.Path[:last] {
				record(i, ev, PhaseChange, c.OnDragChange(Pt(p[0], p[1]), sticky))
			}
			p := ev.Path[last]
			record(i, ev, PhaseEnd, c.OnDragEnd(Pt(p[0], p[1]), sticky))
		case EventCancel:
			sticky := !ev.Free
			c.OnDragBegin()

			for _, p := range ev.Path {
				record(i, ev, PhaseChange, c.OnDragChange(Pt(p[0], p[1]), sticky))
			}
			record(i, ev, PhaseCancel, c.Cancel())
		case EventTap:
			record(i, ev, "", c.OnSingleTap(Pt(ev.X, ev.Y)))
		case EventDoubleTap:
			record(i, ev, "", c.OnDoubleTap())
		case EventResize:
			if err := c.Resize(Ext(ev.Width, ev.Height)); err != nil {
				return frames, errors.Wrapf(err, "event %d", i)
			}
			record(i, ev, "", c.Snapshot())
		default:
			return frames, errors.Errorf("event %d: unsupported event type %q", i, ev.Type)
		}
	}
	return frames, nil
}
