package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlinear/internal/logging"
)

// Summary counts the executed and the failed steps of one run.
type Summary struct {
	Steps  int
	Failed int
}

// Run validates s, builds its container and executes every step, writing one
// line per step: index, operation, result and the container rendering.
// A failing step is reported on its line and the run continues.
// Steps and reallocations are logged through log.
func Run(w io.Writer, s *Script, log *logrus.Entry) (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}
	pol, err := s.Policy.Policy()
	if err != nil {
		return Summary{}, fmt.Errorf("script: policy: %w", err)
	}
	log = log.WithFields(logrus.Fields{"script": s.Name, "container": s.Container})

	m := kinds[strings.ToLower(s.Container)](env{
		policy:   pol,
		capacity: s.Capacity,
		onResize: logging.ResizeHook(log),
	})

	if _, err := fmt.Fprintf(w, "# %s: %s, policy %s\n", s.Name, s.Container, pol); err != nil {
		return Summary{}, err
	}
	var sum Summary
	for i, st := range s.Steps {
		res, err := m.ops[st.Op].fn(st.Args)
		sum.Steps++

		outcome := "ok"
		if v, ok := res.Get(); ok {
			outcome = fmt.Sprint(v)
		}
		entry := log.WithFields(logrus.Fields{"step": i + 1, "op": st.Op})
		if err != nil {
			sum.Failed++
			outcome = "error: " + err.Error()
			entry.WithError(err).Warn("step failed")
		} else {
			entry.WithField("result", outcome).Debug("step")
		}

		if _, err := fmt.Fprintf(w, "%3d  %-18s -> %-10s %s\n", i+1, st, outcome, m.render()); err != nil {
			return sum, err
		}
	}
	log.WithFields(logrus.Fields{"steps": sum.Steps, "failed": sum.Failed}).Info("script done")

	return sum, nil
}
