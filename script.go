package scrollframe

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Progress float64 `json:"progress,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript replays scroll positions and snapshot requests one refresh at
// a time against a ManualContainer. Actions:
//
//	{"action": "scroll", "progress": 0.5}       jump to a progress value
//	{"action": "scrollBy", "delta": 120}        scroll by a pixel delta
//	{"action": "sweep", "progress": 1, "frames": 30}
//	                                            scroll linearly over frames
//	{"action": "wait", "frames": 10}            idle for frames
//	{"action": "snapshot", "label": "mid"}      capture after this refresh
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	sweep     *sweepState
	done      bool
}

type sweepState struct {
	from, to float64
	frame    int
	frames   int
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("scrollframe: parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("scrollframe: parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "sweep", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("scrollframe: parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScrollScript{steps: script.Steps}, nil
}

// Done reports whether every step has run.
func (s *ScrollScript) Done() bool {
	return s.done
}

// Step advances the script by one refresh. Scroll actions are applied to c;
// snapshot labels are returned so the caller can capture them once the
// refresh has drawn.
func (s *ScrollScript) Step(c *ManualContainer) (snapshots []string) {
	if s.done {
		return nil
	}
	if s.sweep != nil {
		s.advanceSweep(c)
		s.checkDone()
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return nil
	}

	// Snapshots and jumps in a row run in the same refresh, so that
	// "scroll" followed by "snapshot" captures the new position.
	for s.cursor < len(s.steps) {
		st := s.steps[s.cursor]
		s.cursor++

		switch st.Action {
		case "snapshot":
			snapshots = append(snapshots, st.Label)
			continue
		case "scroll":
			c.SetProgress(st.Progress)
			continue
		case "scrollBy":
			c.ScrollBy(st.Delta)
			continue
		case "sweep":
			frames := max(st.Frames, 1)
			m, _ := c.Metrics()
			s.sweep = &sweepState{from: m.Progress(), to: st.Progress, frames: frames}
			s.advanceSweep(c)
		case "wait":
			if st.Frames > 0 {
				s.waitCount = st.Frames - 1 // this refresh counts as one
			}
		}
		break
	}
	s.checkDone()
	return snapshots
}

// advanceSweep moves one refresh along the active sweep.
func (s *ScrollScript) advanceSweep(c *ManualContainer) {
	sw := s.sweep
	sw.frame++
	c.SetProgress(sw.from + (sw.to-sw.from)*float64(sw.frame)/float64(sw.frames))
	if sw.frame >= sw.frames {
		s.sweep = nil
	}
}

func (s *ScrollScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && s.sweep == nil {
		s.done = true
	}
}
