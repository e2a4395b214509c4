package cutlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleList = `name: launch-video
segments:
  - av_segment_id: "1"
    start_s: 0
    end_s: 12.5
  - av_segment_id: "2"
    start_s: 12.5
    end_s: 30
markers:
  "2":
    - av_segment_id: "2"
      cut_time_s: 4.0
      canvas_position: 45.7
`

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cuts.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeList(t, sampleList))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if f.Name != "launch-video" {
		t.Errorf("Name = %q", f.Name)
	}
	if len(f.Segments) != 2 || f.Segments[0].ID != "1" || f.Segments[1].EndS != 30 {
		t.Errorf("unexpected segments: %+v", f.Segments)
	}

	markers := f.MarkerMap()["2"]
	if len(markers) != 1 || markers[0].CutTimeS != 4.0 {
		t.Errorf("unexpected markers: %+v", markers)
	}

	segs := f.SessionSegments()
	if len(segs) != 2 || segs[0].Duration() != 12.5 {
		t.Errorf("unexpected session segments: %+v", segs)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no segments",
			content: "segments: []\n",
			wantErr: "no segments",
		},
		{
			name: "missing id",
			content: `segments:
  - start_s: 0
    end_s: 1
`,
			wantErr: "no av_segment_id",
		},
		{
			name: "duplicate id",
			content: `segments:
  - av_segment_id: "1"
    end_s: 1
  - av_segment_id: "1"
    end_s: 2
`,
			wantErr: "duplicate segment id",
		},
		{
			name: "inverted range",
			content: `segments:
  - av_segment_id: "1"
    start_s: 5
    end_s: 2
`,
			wantErr: "ends before it starts",
		},
		{
			name: "markers for unknown segment",
			content: `segments:
  - av_segment_id: "1"
    end_s: 1
markers:
  "9":
    - cut_time_s: 0.5
`,
			wantErr: "unknown segment",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeList(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	f, err := Load(writeList(t, sampleList))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := f.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading saved file: %v", err)
	}
	if len(loaded.Segments) != 2 || loaded.Name != "launch-video" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeList(t, sampleList)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	reloaded := make(chan *File, 1)
	w.SetReloadCallback(func(f *File) {
		select {
		case reloaded <- f:
		default:
		}
	})
	w.Start()

	updated := strings.Replace(sampleList, "end_s: 30", "end_s: 42", 1)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloaded:
		if f.Segments[1].EndS != 42 {
			t.Errorf("reloaded EndS = %v, want 42", f.Segments[1].EndS)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the change")
	}
}

func TestWatcher_ReportsParseErrors(t *testing.T) {
	path := writeList(t, sampleList)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	errCh := make(chan error, 1)
	w.SetErrorCallback(func(err error) {
		select {
		case errCh <- err:
		default:
		}
	})
	w.Start()

	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the parse failure")
	}
}
