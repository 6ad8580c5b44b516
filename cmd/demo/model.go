package main

import (
	"time"

	cohort "github.com/phonolex/phoneme-cohort"

	tea "github.com/charmbracelet/bubbletea"
)

const lexiconSize = 400

type model struct {
	analyzer *cohort.Analyzer
	diag     cohort.Diagnostics
	words    int

	prefix   cohort.Pronunciation
	current  cohort.Cohort
	next     []cohort.Member
	quitting bool
	width    int
	height   int
}

func newModel(seed int64) model {
	gen := NewLexiconGenerator(seed)
	lex := gen.Generate(lexiconSize)

	a := cohort.NewAnalyzer()
	if err := a.Build(lex.Words, lex.Prons, lex.Freqs); err != nil {
		// A generated lexicon violating the monotonicity invariant would be
		// a bug in the library itself; give up loudly.
		panic(err)
	}

	m := model{
		analyzer: a,
		diag:     a.Diagnostics(),
		words:    len(lex.Words),
		width:    100,
		height:   24,
	}
	m.refresh()
	return m
}

// refresh re-queries the cohort and extensions at the current prefix.
func (m *model) refresh() {
	c, ok := m.analyzer.CohortOf(m.prefix)
	if !ok {
		c, _ = m.analyzer.CohortOf(nil)
		m.prefix = nil
	}
	m.current = c
	m.next = m.analyzer.NextSymbols(m.prefix)
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "backspace":
			if len(m.prefix) > 0 {
				m.prefix = m.prefix[:len(m.prefix)-1]
				m.refresh()
			}
			return m, nil
		case "ctrl+r":
			return newModel(time.Now().UnixNano()), nil
		default:
			if sym := msg.String(); len(sym) == 1 {
				extended := append(append(cohort.Pronunciation{}, m.prefix...), sym)
				if _, ok := m.analyzer.CohortOf(extended); ok {
					m.prefix = extended
					m.refresh()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}
