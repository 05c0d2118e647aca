package filter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradients/internal/logger"
)

func TestNewStoreStartsAtAll(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	assert.True(t, s.Active().IsAll())
	assert.Equal(t, 0, s.Changes())
}

func TestSetFilterNotifiesObserversInOrder(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	var calls []string
	s.Subscribe(func(f Filter) { calls = append(calls, "selector:"+f.String()) })
	s.Subscribe(func(f Filter) {
		// Every observer sees the stored value already updated.
		assert.Equal(t, f, s.Active())
		calls = append(calls, "list:"+f.String())
	})

	s.SetFilter(ByTag("warm"))

	assert.Equal(t, []string{"selector:warm", "list:warm"}, calls)
	assert.Equal(t, ByTag("warm"), s.Active())
}

func TestSetFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	once := NewStore(nil)
	once.SetFilter(ByTag("cool"))

	twice := NewStore(nil)
	twice.SetFilter(ByTag("cool"))
	twice.SetFilter(ByTag("cool"))

	assert.Equal(t, once.Active(), twice.Active())
	assert.Equal(t, 2, twice.Changes())
}

func TestSetFilterAcceptsUnknownTags(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	s.SetFilter(ByTag("not-in-dataset"))
	tag, ok := s.Active().Tag()
	require.True(t, ok)
	assert.Equal(t, "not-in-dataset", tag)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	var first, second int
	unsubFirst := s.Subscribe(func(Filter) { first++ })
	s.Subscribe(func(Filter) { second++ })
	require.Equal(t, 2, s.Observers())

	s.SetFilter(ByTag("warm"))
	unsubFirst()
	unsubFirst()
	s.SetFilter(All)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 1, s.Observers())
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	var calls int
	var unsub func()
	unsub = s.Subscribe(func(Filter) {
		calls++
		unsub()
	})
	s.Subscribe(func(Filter) { calls++ })

	s.SetFilter(ByTag("warm"))
	assert.Equal(t, 2, calls)

	s.SetFilter(All)
	assert.Equal(t, 3, calls)
}

func TestSetFilterLogsAtDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	s := NewStore(log)
	s.SetFilter(ByTag("warm"))

	assert.Contains(t, buf.String(), `"to":"warm"`)
	assert.Contains(t, buf.String(), `"from":"all"`)
	assert.Contains(t, buf.String(), "filter updated")
}
