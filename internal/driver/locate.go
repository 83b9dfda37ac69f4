package driver

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"feelscope/internal/source"
)

// locator finds the source position of string values in the scenario
// text, scanning forward so that repeated values map to successive
// occurrences. Values it cannot find get a virtual file of their own.
type locator struct {
	sc      *Scenario
	content string
	cursor  int
}

func newLocator(sc *Scenario) *locator {
	l := &locator{sc: sc}
	if f := sc.Files.Get(sc.FileID); f != nil {
		l.content = string(f.Content)
	}
	return l
}

func (l *locator) find(value string) source.Span {
	for _, quote := range []string{`"`, `'`} {
		needle := quote + value + quote
		if idx := strings.Index(l.content[l.cursor:], needle); idx >= 0 {
			return l.take(l.cursor+idx+1, len(value))
		}
		if idx := strings.Index(l.content, needle); idx >= 0 {
			return l.take(idx+1, len(value))
		}
	}
	id := l.sc.Files.AddVirtual(fmt.Sprintf("%s#%s", l.sc.Path, value), []byte(value))
	return source.Span{File: id, Start: 0, End: toOffset(len(value))}
}

func (l *locator) take(start, n int) source.Span {
	l.cursor = start + n
	return source.Span{File: l.sc.FileID, Start: toOffset(start), End: toOffset(start + n)}
}

func toOffset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
