package events

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"e2enotify/internal/collector"
	"e2enotify/internal/domain"
)

// RunInfo is what a fully replayed stream yields beyond the collector state
type RunInfo struct {
	Status   domain.RunStatus
	Config   BeginConfig
	SawEnd   bool
	Recorded int // testEnd events replayed into the collector
	BadLines int // lines that were not valid events
}

// Reader replays a runner event stream into a collector
type Reader struct {
	collector *collector.Collector

	// OnBegin, when set, is called once when the begin event arrives
	// (used to size the progress bar).
	OnBegin func(cfg BeginConfig)

	// OnTestEnd, when set, is called after each replayed test result
	// (used to drive the progress bar).
	OnTestEnd func(result domain.TestResult)
}

// NewReader creates a Reader feeding the given collector
func NewReader(c *collector.Collector) *Reader {
	return &Reader{collector: c}
}

// Read consumes the stream line by line until EOF. Malformed lines are
// counted and skipped; a stream is only an error when it cannot be read at
// all. Missing begin/end events degrade to zero values rather than failing.
func (r *Reader) Read(in io.Reader) (RunInfo, error) {
	var info RunInfo

	scanner := bufio.NewScanner(in)
	// Error payloads can carry large stack traces
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			info.BadLines++
			continue
		}

		switch ev.Kind {
		case KindBegin:
			if ev.Config != nil {
				info.Config = *ev.Config
				if r.OnBegin != nil {
					r.OnBegin(info.Config)
				}
			}
		case KindTestEnd:
			result, err := ev.TestResult()
			if err != nil || ev.Test == nil {
				info.BadLines++
				continue
			}
			r.collector.RecordResult(*ev.Test, result)
			info.Recorded++
			if r.OnTestEnd != nil {
				r.OnTestEnd(result)
			}
		case KindEnd:
			end, err := ev.RunResult()
			if err != nil {
				info.BadLines++
				continue
			}
			info.Status = end.Status
			info.SawEnd = true
		default:
			info.BadLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return info, fmt.Errorf("read event stream: %w", err)
	}

	return info, nil
}
