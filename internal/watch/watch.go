package watch

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/rjeczalik/notify"
)

// PairWatcher watches the two compared files and reports which side changed.
type PairWatcher struct {
	leftPath  string
	rightPath string
	events    chan notify.EventInfo
	mu        sync.Mutex
}

func NewPairWatcher(leftPath string, rightPath string) *PairWatcher {
	leftAbs, _ := filepath.Abs(leftPath)
	rightAbs, _ := filepath.Abs(rightPath)

	return &PairWatcher{
		leftPath:  leftAbs,
		rightPath: rightAbs,
		mu:        sync.Mutex{},
	}
}

func (pw *PairWatcher) StartWatch(onUpdate func(path string)) {
	pw.events = make(chan notify.EventInfo, 1)

	err := notify.Watch(filepath.Dir(pw.leftPath), pw.events, notify.Write, notify.Create)
	if err != nil { log.Fatal(err) }

	if filepath.Dir(pw.rightPath) != filepath.Dir(pw.leftPath) {
		err = notify.Watch(filepath.Dir(pw.rightPath), pw.events, notify.Write, notify.Create)
		if err != nil { log.Fatal(err) }
	}

	go func() {
		for e := range pw.events {
			if e.Path() == pw.leftPath || e.Path() == pw.rightPath {
				onUpdate(e.Path())
			}
		}
	}()
}

func (pw *PairWatcher) StopWatch() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.events == nil { return }
	notify.Stop(pw.events)
	close(pw.events)
	pw.events = nil
}
