package main

import (
	"io"
	"time"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// ProgressMeter draws a progress bar over the benchmark measurements
type ProgressMeter struct {
	bar      *pb.ProgressBar
	finished bool
	prefix   string
	out      io.Writer
	total    int
}

// Progress matches the callback signature of sortlab.WithProgress
func (pm *ProgressMeter) Progress(done, total int) {
	if pm.bar == nil {
		pm.start(total)
	}
	pm.bar.Set(done)

	if done >= pm.total {
		pm.Finish()
	}
}

func (pm *ProgressMeter) start(total int) {
	pm.bar = pb.New(total)
	pm.bar.Prefix(pm.prefix)
	pm.bar.SetMaxWidth(70)
	pm.bar.SetRefreshRate(200 * time.Millisecond)
	pm.bar.ShowSpeed = false
	pm.bar.Output = pm.out
	pm.bar.Start()

	pm.total = total
}

// Finish stops the bar; it is safe to call more than once
func (pm *ProgressMeter) Finish() {
	if pm.finished || pm.bar == nil {
		return
	}
	pm.bar.Finish()
	pm.finished = true
}

func progress(prefix string, out io.Writer) *ProgressMeter {
	return &ProgressMeter{
		out:    out,
		prefix: prefix,
	}
}
