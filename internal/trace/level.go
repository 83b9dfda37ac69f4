package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only errors
	LevelPhase               // command boundaries
	LevelDetail              // per-scenario spans
	LevelDebug               // every resolver event
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// deepest scope each level lets through
var levelDepth = [...]Scope{
	LevelOff:    0,
	LevelError:  0,
	LevelPhase:  ScopeDriver,
	LevelDetail: ScopeScenario,
	LevelDebug:  ScopeResolver,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelDepth) {
		return false
	}
	return scope != 0 && scope <= levelDepth[l]
}
