package event

import "testing"

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatcher(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	d.Subscribe(ScrollChanged, a)
	d.Subscribe(ScrollChanged, b)
	d.Subscribe(AssetsLoaded, b)

	d.Dispatch(Event{Type: ScrollChanged, Data: 0.0})
	d.Dispatch(Event{Type: AssetFallback})
	d.Unsubscribe(ScrollChanged, a)
	d.Dispatch(Event{Type: ScrollChanged})
	d.Dispatch(Event{Type: AssetsLoaded})

	want := []string{"a:ScrollChanged", "b:ScrollChanged", "b:ScrollChanged", "b:AssetsLoaded"}
	if len(log) != len(want) {
		t.Fatalf("got %v; want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("got %v; want %v", log, want)
		}
	}
}
