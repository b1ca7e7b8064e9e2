package world

import (
	"time"
)

// workQueue - FIFO на срезе с индексом головы. Прочитанная часть
// отбрасывается, когда занимает больше половины среза.
type workQueue struct {
	items []WorkItem
	head  int
}

// Push добавляет операцию в хвост
func (q *workQueue) Push(item WorkItem) {
	q.items = append(q.items, item)
}

// Pop извлекает самую старую операцию
func (q *workQueue) Pop() (WorkItem, bool) {
	if q.head >= len(q.items) {
		return WorkItem{}, false
	}
	item := q.items[q.head]
	q.items[q.head] = WorkItem{}
	q.head++

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, true
}

// Len возвращает число ожидающих операций
func (q *workQueue) Len() int { return len(q.items) - q.head }

// Pending возвращает копию очереди от старых к новым
func (m *Model) Pending() []WorkItem {
	out := make([]WorkItem, m.queue.Len())
	copy(out, m.queue.items[m.queue.head:])
	return out
}

// QueueLen возвращает глубину очереди
func (m *Model) QueueLen() int { return m.queue.Len() }

// ProcessQueue выполняет операции из очереди, пока она не опустеет или не
// истечёт budget. Время проверяется только между операциями, поэтому
// превышение не больше длительности одной операции.
func (m *Model) ProcessQueue(budget time.Duration) int {
	start := m.now()
	n := 0
	for m.queue.Len() > 0 && m.now().Sub(start) < budget {
		item, _ := m.queue.Pop()
		m.apply(item)
		n++
	}
	return n
}

// ProcessEntireQueue выполняет все операции без ограничения по времени
func (m *Model) ProcessEntireQueue() int {
	n := 0
	for {
		item, ok := m.queue.Pop()
		if !ok {
			return n
		}
		m.apply(item)
		n++
	}
}

// apply выполняет одну операцию очереди
func (m *Model) apply(item WorkItem) {
	m.processed++
	switch item.Kind {
	case WorkShow:
		m.applyShow(item)
	case WorkHide:
		m.deleteMesh(item.Pos)
	default:
		m.log.Warn("Неизвестная операция очереди: %v", item.Kind)
	}
}

// applyShow загружает меш, если запись ещё актуальна. Блок мог быть убран или
// заменён после постановки в очередь, либо закрыт соседями (генерация ставит
// внутренние блоки колонн).
func (m *Model) applyShow(item WorkItem) {
	id, ok := m.blocks[item.Pos]
	if !ok || id != item.Block {
		m.staleSkipped++
		return
	}
	// Немедленное скрытие после постановки в очередь отменяет показ.
	if cur, shown := m.shown[item.Pos]; !shown || cur != id {
		m.staleSkipped++
		return
	}
	if !m.Exposed(item.Pos) {
		delete(m.shown, item.Pos)
		m.deleteMesh(item.Pos)
		return
	}
	m.upload(item.Pos, id)
}
