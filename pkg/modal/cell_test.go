package modal

import "testing"

func TestCellSetNotifiesSubscribers(t *testing.T) {
	cell := NewCell(0)
	var a, b []int
	unsubA := cell.Subscribe(func(v int) { a = append(a, v) })
	cell.Subscribe(func(v int) { b = append(b, v) })

	cell.Set(1)
	unsubA()
	cell.Set(2)

	if cell.Get() != 2 {
		t.Errorf("Get() = %d, want 2", cell.Get())
	}
	if len(a) != 1 || a[0] != 1 {
		t.Errorf("a = %v, want [1]", a)
	}
	if len(b) != 2 || b[1] != 2 {
		t.Errorf("b = %v, want [1 2]", b)
	}
}

func TestCellUnsubscribeDuringNotify(t *testing.T) {
	cell := NewCell("")
	calls := 0
	var unsub func()
	unsub = cell.Subscribe(func(string) {
		calls++
		unsub()
	})
	other := 0
	cell.Subscribe(func(string) { other++ })

	cell.Set("x")
	cell.Set("y")

	if calls != 1 {
		t.Errorf("self-unsubscribing listener called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other listener called %d times, want 2", other)
	}
}

func TestCellUnsubscribeTwice(t *testing.T) {
	cell := NewCell(0)
	unsub := cell.Subscribe(func(int) {})
	unsub()
	unsub()
	cell.Set(1)
}
