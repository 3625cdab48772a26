package wizard

import (
	"context"
	"fmt"

	"github.com/bnema/devfile-wizard/internal/boundaries/in"
	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
)

type stepKind int

const (
	stepAnswer stepKind = iota
	stepDefault
	stepChoose
	stepCancel
)

type step struct {
	kind   stepKind
	value  string
	choice int
}

func answer(v string) step { return step{kind: stepAnswer, value: v} }
func accept() step         { return step{kind: stepDefault} }
func choose(i int) step    { return step{kind: stepChoose, choice: i} }
func cancel() step         { return step{kind: stepCancel} }

// scriptedPrompter replays answers in order. Input answers go through the
// prompt validator, and a rejected answer is returned as an error.
type scriptedPrompter struct {
	steps   []step
	pos     int
	inputs  []out.InputConfig
	selects []out.SelectConfig
	infos   []string
}

func script(steps ...step) *scriptedPrompter {
	return &scriptedPrompter{steps: steps}
}

func (p *scriptedPrompter) next() (step, error) {
	if p.pos >= len(p.steps) {
		return step{}, fmt.Errorf("no answer scripted for prompt %d", p.pos+1)
	}
	s := p.steps[p.pos]
	p.pos++
	return s, nil
}

func (p *scriptedPrompter) Input(_ context.Context, cfg out.InputConfig) (string, error) {
	p.inputs = append(p.inputs, cfg)
	s, err := p.next()
	if err != nil {
		return "", err
	}

	var value string
	switch s.kind {
	case stepCancel:
		return "", domain.ErrUserCancelled
	case stepDefault:
		value = cfg.Default
	case stepAnswer:
		value = s.value
	default:
		return "", fmt.Errorf("prompt %d: expected an input answer", p.pos)
	}

	if cfg.Validate != nil {
		if err := cfg.Validate(value); err != nil {
			return "", fmt.Errorf("answer %q rejected: %w", value, err)
		}
	}
	return value, nil
}

func (p *scriptedPrompter) Select(_ context.Context, cfg out.SelectConfig) (int, error) {
	p.selects = append(p.selects, cfg)
	s, err := p.next()
	if err != nil {
		return 0, err
	}

	switch s.kind {
	case stepCancel:
		return 0, domain.ErrUserCancelled
	case stepDefault:
		return cfg.Default, nil
	case stepChoose:
		return s.choice, nil
	default:
		return 0, fmt.Errorf("prompt %d: expected a choice", p.pos)
	}
}

func (p *scriptedPrompter) Info(_ context.Context, msg string) error {
	p.infos = append(p.infos, msg)
	return nil
}

func (p *scriptedPrompter) done() bool {
	return p.pos == len(p.steps)
}

// memoryStore is an in-memory DevfileStore that records saves.
type memoryStore struct {
	doc         *domain.Devfile
	loaded      bool
	blocked     error
	saveErr     error
	defaultName string
	saves       []in.SaveOptions
}

func newMemoryStore(doc *domain.Devfile) *memoryStore {
	return &memoryStore{doc: doc, defaultName: domain.DefaultDevfileName}
}

func (m *memoryStore) Initialize(context.Context) error { return nil }
func (m *memoryStore) Current() *domain.Devfile          { return m.doc }
func (m *memoryStore) DefaultName() string               { return m.defaultName }
func (m *memoryStore) Loaded() bool                      { return m.loaded }
func (m *memoryStore) Source() string                    { return "/work/project/.devfile.yaml" }
func (m *memoryStore) Probe() domain.Probe               { return domain.Probe{} }
func (m *memoryStore) Strategy() domain.UpdateStrategy   { return domain.StrategySilent }
func (m *memoryStore) Blocked() error                    { return m.blocked }
func (m *memoryStore) Render() ([]byte, error)           { return nil, nil }

func (m *memoryStore) Reset(name string) *domain.Devfile {
	m.doc = domain.NewDevfile(name)
	m.loaded = false
	return m.doc
}

func (m *memoryStore) Save(_ context.Context, opts in.SaveOptions) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, opts)
	return nil
}

func (m *memoryStore) SaveConfirmed(ctx context.Context, opts in.SaveOptions) error {
	return m.Save(ctx, opts)
}

func (m *memoryStore) messages() []string {
	var msgs []string
	for _, s := range m.saves {
		msgs = append(msgs, s.Message)
	}
	return msgs
}

func withContainer(name, image string) *domain.Devfile {
	d := domain.NewDevfile("devfile-sample")
	if err := d.AddComponent(domain.Component{Name: name, Container: &domain.Container{Image: image, MountSources: true}}); err != nil {
		panic(err)
	}
	return d
}
