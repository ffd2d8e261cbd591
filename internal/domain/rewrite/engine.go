package rewrite

import (
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// Engine runs the migration steps over one file's text.
type Engine struct {
	steps []Step
}

// NewEngine validates migration and builds the four steps in their fixed
// order: import injection, call-site rewrite, hook injection, render-site
// injection.
func NewEngine(migration m.Migration) (*Engine, error) {
	if err := Validate(migration); err != nil {
		return nil, err
	}

	return NewEngineWithSteps(
		newImportStep(migration),
		newCallSiteStep(migration),
		newHookStep(migration),
		newRenderStep(migration),
	), nil
}

// NewEngineWithSteps builds an Engine that runs steps in the given order.
func NewEngineWithSteps(steps ...Step) *Engine {
	return &Engine{steps: steps}
}

// Rewrite applies every step whose effect is not yet present. It never fails:
// a step without an anchor leaves the text as it was.
func (e *Engine) Rewrite(text m.SourceText) m.TransformResult {
	current := text

	for _, step := range e.steps {
		if step.Present(current) {
			continue
		}

		current = step.Apply(current)
	}

	return m.TransformResult{
		Text:    current,
		Changed: current != text,
	}
}

// Steps lists the engine's steps in execution order.
func (e *Engine) Steps() []m.StepInfo {
	infos := make([]m.StepInfo, 0, len(e.steps))
	for _, step := range e.steps {
		infos = append(infos, m.StepInfo{Name: step.Name(), Marker: step.Marker()})
	}

	return infos
}
