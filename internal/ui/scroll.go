package ui

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"anchortip/internal/bus"
)

const scrollTopicPrefix = "scroll."

// ScrollRegistry tracks the application's scroll containers and
// publishes their movement on the message bus. Sessions snapshot the
// containers enclosing their anchor at show-time and hide on the first
// scroll event from any of them.
type ScrollRegistry struct {
	bus    bus.MessageBus
	logger *slog.Logger

	mu      sync.Mutex
	nextID  int
	watched map[int]*container.Scroll
}

func NewScrollRegistry(b bus.MessageBus) *ScrollRegistry {
	return &ScrollRegistry{
		bus:     b,
		logger:  slog.With("component", "ui.scroll"),
		watched: make(map[int]*container.Scroll),
	}
}

// Watch starts publishing sc's scroll changes. The returned release
// stops tracking the container; the chained OnScrolled handler stays
// installed but publishes nothing once released.
func (r *ScrollRegistry) Watch(sc *container.Scroll) (release func()) {
	if r == nil || sc == nil {
		return func() {}
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.watched[id] = sc
	r.mu.Unlock()

	topic := scrollTopic(id)
	prev := sc.OnScrolled
	sc.OnScrolled = func(pos fyne.Position) {
		if prev != nil {
			prev(pos)
		}
		r.mu.Lock()
		_, active := r.watched[id]
		r.mu.Unlock()
		if active && r.bus != nil {
			r.bus.Publish(topic, pos)
		}
	}

	return func() {
		r.mu.Lock()
		delete(r.watched, id)
		r.mu.Unlock()
	}
}

// snapshotTopics resolves which watched containers enclose the anchor
// right now and can actually scroll. The result is a point-in-time
// snapshot; containers registered later are not picked up.
func (r *ScrollRegistry) snapshotTopics(anchor fyne.CanvasObject) []string {
	driver := currentDriver()
	if driver == nil || driver.CanvasForObject(anchor) == nil {
		return nil
	}
	anchorPos := driver.AbsolutePositionForObject(anchor)

	r.mu.Lock()
	defer r.mu.Unlock()

	var topics []string
	for id, sc := range r.watched {
		if !scrollableExtent(sc) {
			continue
		}
		scPos := driver.AbsolutePositionForObject(sc)
		scSize := sc.Size()
		if anchorPos.X < scPos.X || anchorPos.Y < scPos.Y ||
			anchorPos.X > scPos.X+scSize.Width || anchorPos.Y > scPos.Y+scSize.Height {
			continue
		}
		topics = append(topics, scrollTopic(id))
	}

	return topics
}

// subscribeHide arms onScroll for every scroll container enclosing the
// anchor at this instant. onScroll fires at most once per subscription
// goroutine and is delivered off the UI thread; the returned stop
// releases all subscriptions together.
func (r *ScrollRegistry) subscribeHide(anchor fyne.CanvasObject, onScroll func()) (stop func()) {
	if r == nil || r.bus == nil {
		return func() {}
	}

	topics := r.snapshotTopics(anchor)
	if len(topics) == 0 {
		return func() {}
	}
	r.logger.Debug("armed scroll-hide subscriptions", "topics", topics)

	done := make(chan struct{})
	var stopOnce sync.Once

	subs := make([]bus.Subscription, 0, len(topics))
	for _, topic := range topics {
		sub := r.bus.Subscribe(topic)
		subs = append(subs, sub)

		go func() {
			select {
			case <-done:
			case _, ok := <-sub:
				if !ok {
					return
				}
				select {
				case <-done:
				default:
					onScroll()
				}
			}
		}()
	}

	return func() {
		stopOnce.Do(func() {
			close(done)
			for i, sub := range subs {
				r.bus.Unsubscribe(sub, topics[i])
			}
		})
	}
}

func scrollableExtent(sc *container.Scroll) bool {
	if sc == nil || sc.Content == nil {
		return false
	}
	min := sc.Content.MinSize()
	size := sc.Size()

	return min.Width > size.Width || min.Height > size.Height
}

func scrollTopic(id int) string {
	return fmt.Sprintf("%s%d", scrollTopicPrefix, id)
}
