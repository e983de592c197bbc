package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"
)

func TestTraceTo(t *testing.T) {
	logger := &recordingLogger{}
	greeting := TraceTo(logger, "greeting", Literal("hi"))

	o := greeting(NewCursor("hi"))
	require.True(t, o.Ok())
	o = greeting(NewCursor("ho"))
	require.False(t, o.Ok())

	assert.Equal(t, []string{"enter", "match", "enter", "fail"}, logger.messages())
	assert.Equal(t, "greeting", logger.value(1, "rule"))
	assert.Equal(t, 2, logger.value(1, "next"))
	assert.Equal(t, "'hi'", logger.value(3, "expected"))
}

func TestTraceTo_Disabled(t *testing.T) {
	var calls int
	p := TraceTo(commonlog.MOCK_LOGGER, "quiet", counted(Literal("a"), &calls))

	o := p(NewCursor("a"))
	assert.True(t, o.Ok())
	assert.Equal(t, 1, calls)
}

func TestTrace_DefaultLogger(t *testing.T) {
	// no backend is configured in tests, so tracing is a pass-through
	o := Literal("a").Trace("a")(NewCursor("a"))
	require.True(t, o.Ok())
	assert.Equal(t, "a", o.Value)
}
