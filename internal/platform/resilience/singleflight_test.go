package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_Do_CollapsesConcurrentCalls(t *testing.T) {
	var g Group[string]
	var runs atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("https://example.test/standings", func() (string, error) {
				runs.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "<html/>", nil
			})
			if err != nil || v != "<html/>" {
				t.Errorf("unexpected result %q, %v", v, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected a single run, got %d", got)
	}
}

func TestGroup_DoContext_CallerCancelDoesNotFailOthers(t *testing.T) {
	var g Group[string]
	started := make(chan struct{})
	release := make(chan struct{})
	var sharedErr atomic.Value

	fn := func(ctx context.Context) (string, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			sharedErr.Store(err)
		}
		return "<html/>", nil
	}

	first, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := g.DoContext(first, "standings", fn)
		firstDone <- err
	}()
	<-started

	secondDone := make(chan string, 1)
	go func() {
		v, err := g.DoContext(context.Background(), "standings", fn)
		if err != nil {
			t.Errorf("second caller: %v", err)
		}
		secondDone <- v
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-firstDone; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected first caller to see its cancellation, got %v", err)
	}

	close(release)
	if v := <-secondDone; v != "<html/>" {
		t.Fatalf("expected shared result, got %q", v)
	}
	if err := sharedErr.Load(); err != nil {
		t.Fatalf("shared run saw a cancelled context: %v", err)
	}
}
