package animation

import "github.com/san-kum/sortviz/internal/sorting"

// Presenter renders frames. Present may read the Session (Frame, Status)
// but must not call a method that presents, or it deadlocks.
type Presenter interface {
	Present(f sorting.Frame)
}

// PresenterFunc adapts a function to a Presenter.
type PresenterFunc func(f sorting.Frame)

func (fn PresenterFunc) Present(f sorting.Frame) { fn(f) }

// Presenters fans one frame out to several presenters in order.
type Presenters []Presenter

func (ps Presenters) Present(f sorting.Frame) {
	for _, p := range ps {
		if p != nil {
			p.Present(f)
		}
	}
}
