package pipeline

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 2)
	sink := ChannelSink{Ch: ch}
	Emit(sink, Event{File: "a.vert", Stage: StageLex, Status: StatusWorking})
	Emit(sink, Event{File: "a.vert", Stage: StageTranslate, Status: StatusError, Err: errors.New("boom")})
	close(ch)

	var got []Event
	for ev := range ch {
		got = append(got, ev)
	}
	if len(got) != 2 || got[0].Final() || !got[1].Final() {
		t.Fatalf("events = %+v", got)
	}
	Emit(nil, Event{})
	ChannelSink{}.OnEvent(Event{})
}

func TestTimingsConcurrent(t *testing.T) {
	var tm Timings
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add(StageLex, time.Millisecond)
			tm.Add(StageTranslate, 2*time.Millisecond)
		}()
	}
	wg.Wait()
	if tm.Duration(StageLex) != 8*time.Millisecond {
		t.Errorf("lex = %s", tm.Duration(StageLex))
	}
	if !tm.Has(StageTranslate) || tm.Has(StageCache) {
		t.Error("Has mismatch")
	}
	if tm.Sum(StageLex, StageTranslate) != 24*time.Millisecond {
		t.Errorf("sum = %s", tm.Sum(StageLex, StageTranslate))
	}
}
