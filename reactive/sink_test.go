package reactive

import (
	"sync"
	"testing"
)

func TestSinkMulticastOrder(t *testing.T) {
	sink := NewSink[int]()
	stream := sink.Stream()

	var first, second []int
	if _, err := stream.Subscribe(func(v int) { first = append(first, v) }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := stream.Subscribe(func(v int) { second = append(second, v) }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	for _, v := range []int{1, 2, 3} {
		sink.Send(v)
	}

	want := []int{1, 2, 3}
	for name, got := range map[string][]int{"first": first, "second": second} {
		if len(got) != len(want) {
			t.Fatalf("%s observer got %v, want %v", name, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s observer[%d] = %d, want %d", name, i, got[i], want[i])
			}
		}
	}
}

func TestSinkNoReplay(t *testing.T) {
	sink := NewSink[string]()
	sink.Send("before")

	var got []string
	if _, err := sink.Stream().Subscribe(func(v string) { got = append(got, v) }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sink.Send("after")

	if len(got) != 1 || got[0] != "after" {
		t.Errorf("observer got %v, want [after]", got)
	}
}

func TestSinkObserverRegistrationOrder(t *testing.T) {
	sink := NewSink[struct{}]()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		if _, err := sink.Stream().Subscribe(func(struct{}) { order = append(order, i) }); err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
	}

	sink.Send(struct{}{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestSinkStreamViewsShareEmissions(t *testing.T) {
	sink := NewSink[int]()

	var a, b int
	if _, err := sink.Stream().Subscribe(func(v int) { a = v }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := sink.Stream().Subscribe(func(v int) { b = v }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sink.Send(42)

	if a != 42 || b != 42 {
		t.Errorf("views got %d and %d, want both 42", a, b)
	}
}

func TestSinkStats(t *testing.T) {
	sink := NewSink[int](WithPanicHandler(func(any, any, []byte) {}))

	if _, err := sink.Stream().Subscribe(func(int) {}); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	panicky, err := sink.Stream().Subscribe(func(int) { panic("boom") })
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sink.Send(1)
	sink.Send(2)

	stats := sink.Stats()
	if stats.Sent != 2 {
		t.Errorf("Sent = %d, want 2", stats.Sent)
	}
	if stats.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", stats.Delivered)
	}
	if stats.ObserverPanics != 2 {
		t.Errorf("ObserverPanics = %d, want 2", stats.ObserverPanics)
	}
	if stats.ActiveObservers != 2 {
		t.Errorf("ActiveObservers = %d, want 2", stats.ActiveObservers)
	}

	panicky.Cancel()
	if got := sink.Stats().ActiveObservers; got != 1 {
		t.Errorf("ActiveObservers after cancel = %d, want 1", got)
	}
}

func TestSinkPanicHandler(t *testing.T) {
	var handledValue, handledPanic any
	sink := NewSink[int](WithPanicHandler(func(value, recovered any, stack []byte) {
		handledValue = value
		handledPanic = recovered
		if len(stack) == 0 {
			t.Error("handler received empty stack")
		}
	}))

	if _, err := sink.Stream().Subscribe(func(int) { panic("observer failed") }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	var after int
	if _, err := sink.Stream().Subscribe(func(v int) { after = v }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sink.Send(7)

	if handledValue != 7 {
		t.Errorf("handler value = %v, want 7", handledValue)
	}
	if handledPanic != "observer failed" {
		t.Errorf("handler panic = %v, want %q", handledPanic, "observer failed")
	}
	if after != 7 {
		t.Errorf("later observer got %d, want 7 (delivery should continue past a panic)", after)
	}
}

func TestSinkPanicPropagatesWithoutHandler(t *testing.T) {
	sink := NewSink[int]()
	if _, err := sink.Stream().Subscribe(func(int) { panic("boom") }); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Send() did not propagate observer panic")
		}
	}()
	sink.Send(1)
}

func TestSinkConcurrentSubscribe(t *testing.T) {
	sink := NewSink[int]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sink.Stream().Subscribe(func(int) {}); err != nil {
				t.Errorf("Subscribe() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := sink.Stats().ActiveObservers; got != 16 {
		t.Errorf("ActiveObservers = %d, want 16", got)
	}
}

func TestSubscribeDuringDelivery(t *testing.T) {
	sink := NewSink[int]()
	stream := sink.Stream()

	var lateCalls int
	if _, err := stream.Subscribe(func(int) {
		_, _ = stream.Subscribe(func(int) { lateCalls++ })
	}); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sink.Send(1)
	if lateCalls != 0 {
		t.Errorf("observer registered mid-delivery ran %d times for the same emission", lateCalls)
	}

	sink.Send(2)
	if lateCalls == 0 {
		t.Error("observer registered mid-delivery never ran for later emissions")
	}
}
