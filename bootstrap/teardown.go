package bootstrap

import "github.com/sirupsen/logrus"

type releaseStep struct {
	name    string
	release func()
}

// Teardown releases acquired resources in reverse order of acquisition.
// The zero value is ready to use.
type Teardown struct {
	steps []releaseStep
	log   logrus.FieldLogger
}

func NewTeardown(log logrus.FieldLogger) *Teardown {
	return &Teardown{log: log}
}

// Defer registers release to run when Release is called. Call it right
// after the resource it frees has been acquired.
func (t *Teardown) Defer(name string, release func()) {
	t.steps = append(t.steps, releaseStep{name: name, release: release})
}

func (t *Teardown) Len() int {
	return len(t.steps)
}

// Release runs every registered step, last registered first, and empties
// the stack. It is safe to call more than once.
func (t *Teardown) Release() {
	for len(t.steps) > 0 {
		step := t.steps[len(t.steps)-1]
		t.steps = t.steps[:len(t.steps)-1]

		if t.log != nil {
			t.log.WithField("resource", step.name).Debug("releasing")
		}
		step.release()
	}
}
