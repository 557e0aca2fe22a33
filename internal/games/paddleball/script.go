package paddleball

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/physics"
)

// KeysFromInput converts a platform input frame into directional keys.
func KeysFromInput(in core.InputFrame) physics.Keys {
	return physics.Keys{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	}
}

// ScriptStep holds a set of keys for a number of ticks.
type ScriptStep struct {
	Keys  physics.Keys
	Ticks int
}

// Script is a scripted input sequence for headless runs.
type Script []ScriptStep

// ParseScript parses "left:30,right+up:10,none:5" into a Script.
// Each entry is a '+'-joined list of directions and a tick count.
func ParseScript(s string) (Script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var script Script
	for _, part := range strings.Split(s, ",") {
		name, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: want <keys>:<ticks>", part)
		}

		ticks, err := strconv.Atoi(count)
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("script entry %q: bad tick count %q", part, count)
		}

		in := core.NewInputFrame()
		for _, key := range strings.Split(name, "+") {
			action, ok := core.ParseAction(strings.ToLower(strings.TrimSpace(key)))
			if !ok {
				return nil, fmt.Errorf("script entry %q: unknown key %q", part, key)
			}
			in.Set(action)
		}

		script = append(script, ScriptStep{Keys: KeysFromInput(in), Ticks: ticks})
	}
	return script, nil
}

// At returns the keys held at the given zero-based tick.
// Past the end of the script no keys are held.
func (s Script) At(tick int) physics.Keys {
	for _, step := range s {
		if tick < step.Ticks {
			return step.Keys
		}
		tick -= step.Ticks
	}
	return physics.Keys{}
}

// Len returns the total number of ticks covered by the script.
func (s Script) Len() int {
	n := 0
	for _, step := range s {
		n += step.Ticks
	}
	return n
}
