package playback

import "testing"

type fakeHandle struct {
	playing bool
	time    float64
	dur     float64
}

func (f *fakeHandle) Play()                { f.playing = true }
func (f *fakeHandle) Pause()               { f.playing = false }
func (f *fakeHandle) CurrentTime() float64 { return f.time }
func (f *fakeHandle) Duration() float64    { return f.dur }

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if r.Get("a") != nil {
		t.Error("Get on empty registry should return nil")
	}

	h := &fakeHandle{time: 1.5, dur: 10}
	r.Set("a", h)
	if r.Get("a") != h {
		t.Error("Get should return the registered handle")
	}

	r.Set("a", nil)
	if r.Get("a") != nil {
		t.Error("Set(nil) should unregister the handle")
	}
}

func TestRegistry_PlayAllPauseAll(t *testing.T) {
	r := NewRegistry()
	a := &fakeHandle{}
	b := &fakeHandle{playing: true}
	r.Set("a", a)
	r.Set("b", b)

	r.PlayAll()
	if !a.playing || !b.playing {
		t.Error("PlayAll should resume every handle")
	}

	r.PauseAll()
	if a.playing || b.playing {
		t.Error("PauseAll should pause every handle")
	}
}
