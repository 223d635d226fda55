package progress

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOutput struct {
	lines []string
	err   error
}

func (r *recordingOutput) WriteLine(text string) error {
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, text)
	return nil
}

func (r *recordingOutput) Colorize(text string, color Color) string {
	return "{" + string(color) + ":" + text + "}"
}

func (r *recordingOutput) last() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}

func newTestBar(t *testing.T, max float64, opts ...Option) (*Bar, *recordingOutput) {
	t.Helper()

	out := &recordingOutput{}
	bar, err := New(max, append([]Option{WithOutput(out)}, opts...)...)
	require.NoError(t, err)

	return bar, out
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		max     float64
		opts    []Option
		wantErr error
	}{
		{name: "zero max", max: 0, wantErr: ErrInvalidMax},
		{name: "negative max", max: -5, wantErr: ErrInvalidMax},
		{name: "zero width", max: 10, opts: []Option{WithWidth(0)}, wantErr: ErrInvalidWidth},
		{name: "negative width", max: 10, opts: []Option{WithWidth(-1)}, wantErr: ErrInvalidWidth},
		{name: "empty glyph", max: 10, opts: []Option{WithCompleteGlyph("")}, wantErr: ErrInvalidGlyph},
		{name: "valid", max: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, err := New(tt.max, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, bar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultWidth, bar.Width())
			assert.Equal(t, tt.max, bar.Max())
		})
	}
}

func TestNew_ClampsInitialValue(t *testing.T) {
	bar, _ := newTestBar(t, 10, WithCurrent(-3))
	assert.Equal(t, 0.0, bar.Current())
}

func TestNew_DoesNotEmit(t *testing.T) {
	_, out := newTestBar(t, 10)
	assert.Empty(t, out.lines)
}

func TestBar_EndToEnd(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithWidth(10),
		WithFormat("[$(bar)] $(percent)"),
		WithCompleteGlyph("#"),
		WithIncompleteGlyph("-"),
	)

	require.NoError(t, bar.SetCurrent(5))

	assert.Equal(t, "[#####-----]  50.00%", out.last())
}

func TestBar_LiteralOnlyFormat(t *testing.T) {
	bar, out := newTestBar(t, 10, WithFormat("nothing to see"))

	for _, v := range []float64{0, 3, 10, 25} {
		require.NoError(t, bar.SetCurrent(v))
		assert.Equal(t, "nothing to see", out.last())
	}
}

func TestBar_FilledCount(t *testing.T) {
	bar, _ := newTestBar(t, 7, WithWidth(13), WithFormat("$(bar)"), WithCompleteGlyph("#"), WithIncompleteGlyph("-"))

	for v := 0.0; v <= 7; v += 0.5 {
		require.NoError(t, bar.SetCurrent(v))

		line := bar.String()
		want := int(v / 7 * 13)
		assert.Equal(t, want, strings.Count(line, "#"), "value %v", v)
		assert.Equal(t, 13, len(line), "value %v", v)
	}
}

func TestBar_OverflowFillsBarExactly(t *testing.T) {
	bar, out := newTestBar(t, 10, WithWidth(4), WithFormat("$(bar)"), WithCompleteGlyph("#"), WithIncompleteGlyph("-"))

	require.NoError(t, bar.SetCurrent(25))
	assert.Equal(t, "####", out.last())
}

func TestBar_CurrentMarker(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithWidth(10),
		WithFormat("$(bar)"),
		WithCompleteGlyph("="),
		WithIncompleteGlyph(" "),
		WithCurrentGlyph(">>"),
	)

	require.NoError(t, bar.SetCurrent(3))
	assert.Equal(t, "===>      ", out.last())

	require.NoError(t, bar.SetCurrent(0))
	assert.Equal(t, ">         ", out.last())

	require.NoError(t, bar.SetCurrent(10))
	assert.Equal(t, "==========", out.last())
}

func TestBar_Colors(t *testing.T) {
	bar, out := newTestBar(t, 4,
		WithWidth(4),
		WithFormat("$(bar)"),
		WithCompleteGlyph("#"),
		WithIncompleteGlyph("-"),
		WithCompleteColor("green"),
	)

	require.NoError(t, bar.SetCurrent(1))
	assert.Equal(t, "{green:#}---", out.last())

	require.NoError(t, bar.SetIncompleteColor("red"))
	assert.Equal(t, "{green:#}{red:---}", out.last())

	require.NoError(t, bar.SetCurrent(4))
	assert.Equal(t, "{green:####}", out.last())
}

func TestBar_Percent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "  0.00%"},
		{1, " 10.00%"},
		{4.5, " 45.00%"},
		{10, "100.00%"},
		{15, "150.00%"},
	}

	bar, out := newTestBar(t, 10, WithFormat("$(percent)"))
	for _, tt := range tests {
		require.NoError(t, bar.SetCurrent(tt.value))
		assert.Equal(t, tt.want, out.last())
	}
}

func TestBar_Status(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithFormat("$(status)"),
		WithCurrentMessage("working"),
		WithFinishMessage("finished"),
		WithOverflowMessage("too far"),
	)

	require.NoError(t, bar.SetCurrent(3))
	assert.Equal(t, "working", out.last())

	require.NoError(t, bar.SetCurrent(10))
	assert.Equal(t, "finished", out.last())

	require.NoError(t, bar.SetCurrent(11))
	assert.Equal(t, "too far", out.last())
}

func TestBar_StatusEmptyMessages(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithFormat("<$(status)>"),
		WithFinishMessage(""),
		WithOverflowMessage(""),
	)

	for _, v := range []float64{1, 10, 20} {
		require.NoError(t, bar.SetCurrent(v))
		assert.Equal(t, "<>", out.last())
	}
}

func TestBar_StatusAnimation(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithFormat("$(status)"),
		WithCurrentMessage("ignored"),
		WithAnimation("a", "b", "c"),
	)

	var frames []string
	for i := 0; i < 4; i++ {
		require.NoError(t, bar.Increment(1))
		frames = append(frames, out.last())
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, frames)

	require.NoError(t, bar.SetCurrent(10))
	assert.Equal(t, DefaultFinishMessage, out.last())
}

func TestBar_AnimationsAreIndependent(t *testing.T) {
	a, outA := newTestBar(t, 10, WithFormat("$(status)"), WithAnimation("1", "2"))
	b, outB := newTestBar(t, 10, WithFormat("$(status)"), WithAnimation("1", "2"))

	require.NoError(t, a.Increment(1))
	require.NoError(t, a.Increment(1))
	require.NoError(t, b.Increment(1))

	assert.Equal(t, "2", outA.last())
	assert.Equal(t, "1", outB.last())
}

func TestBar_Current(t *testing.T) {
	bar, out := newTestBar(t, 10, WithFormat("$(current)/10"))

	require.NoError(t, bar.SetCurrent(5))
	assert.Equal(t, "5/10", out.last())

	require.NoError(t, bar.SetCurrent(2.5))
	assert.Equal(t, "2.5/10", out.last())
}

func TestBar_UnknownTokenRendersEmpty(t *testing.T) {
	bar, out := newTestBar(t, 10, WithFormat("a $(bogus) b"))

	require.NoError(t, bar.Render())
	assert.Equal(t, "a  b", out.last())
}

func TestBar_IncrementClampsAtZero(t *testing.T) {
	bar, _ := newTestBar(t, 10, WithCurrent(3))

	require.NoError(t, bar.Increment(-5))
	assert.Equal(t, 0.0, bar.Current())

	require.NoError(t, bar.Increment(2))
	assert.Equal(t, 2.0, bar.Current())
}

func TestBar_SetCurrentClampsAtZero(t *testing.T) {
	bar, _ := newTestBar(t, 10)

	require.NoError(t, bar.SetCurrent(-1))
	assert.Equal(t, 0.0, bar.Current())
}

func TestBar_SetPercentDone(t *testing.T) {
	bar, _ := newTestBar(t, 40)

	require.NoError(t, bar.SetPercentDone(-0.5))
	assert.Equal(t, 0.0, bar.Current())

	require.NoError(t, bar.SetPercentDone(0.25))
	assert.Equal(t, 10.0, bar.Current())

	require.NoError(t, bar.SetPercentDone(1.5))
	assert.Equal(t, 60.0, bar.Current())
	assert.True(t, bar.Done())
	assert.Equal(t, 1.5, bar.Progress())
}

func TestBar_SetPercentDoneNaNClampsToZero(t *testing.T) {
	bar, out := newTestBar(t, 10,
		WithFormat("[$(bar)] $(current)"),
		WithCompleteGlyph("#"),
		WithIncompleteGlyph("-"),
	)

	require.NoError(t, bar.SetPercentDone(math.NaN()))
	assert.Equal(t, 0.0, bar.Current())
	assert.Equal(t, "[----------] 0", out.last())
}

func TestBar_GlyphSetters(t *testing.T) {
	bar, out := newTestBar(t, 2, WithWidth(2), WithFormat("$(bar)"), WithCurrent(1))

	require.NoError(t, bar.SetCompleteChar("XYZ"))
	assert.Equal(t, "X ", out.last())

	require.NoError(t, bar.SetIncompleteChar("_-"))
	assert.Equal(t, "X_", out.last())

	require.NoError(t, bar.SetCompleteChar("é!"))
	assert.Equal(t, "é_", out.last())

	require.NoError(t, bar.SetCurrentChar("|"))
	assert.Equal(t, "é|", out.last())

	lines := len(out.lines)
	assert.ErrorIs(t, bar.SetIncompleteChar(""), ErrInvalidGlyph)
	assert.Len(t, out.lines, lines)
}

func TestBar_OutputErrorPropagates(t *testing.T) {
	out := &recordingOutput{err: errors.New("tty gone")}
	bar, err := New(10, WithOutput(out), WithFormat("$(current)"))
	require.NoError(t, err)

	err = bar.Increment(4)
	assert.EqualError(t, err, "tty gone")
	assert.Equal(t, 4.0, bar.Current())

	out.err = nil
	require.NoError(t, bar.Render())
	assert.Equal(t, "4", out.last())
}

func TestBar_TimeUnknownAtZero(t *testing.T) {
	bar, out := newTestBar(t, 100, WithFormat("$(time)"))

	require.NoError(t, bar.Render())
	assert.Equal(t, UnknownETA, out.last())
}

func TestBar_TimeEstimate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	bar, out := newTestBar(t, 100, WithFormat("$(time)"), WithClock(clock))

	now = now.Add(10 * time.Second)
	require.NoError(t, bar.SetCurrent(50))

	// One observation of 10s: total=10, sumSq=100, sigma=0, scale=1.
	assert.Equal(t, "ETA ~[10s, 10s]", out.last())
	assert.Equal(t, 10*time.Second, bar.Elapsed())
}

func TestBar_ElapsedWithoutTimeToken(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	bar, _ := newTestBar(t, 10, WithFormat("$(current)"), WithClock(clock))

	now = now.Add(5 * time.Second)
	require.NoError(t, bar.SetCurrent(3))
	assert.Equal(t, 5*time.Second, bar.Elapsed())
}

func TestBar_TimeObservedOncePerRender(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	bar, out := newTestBar(t, 100, WithFormat("$(time) $(time)"), WithClock(clock))

	now = now.Add(10 * time.Second)
	require.NoError(t, bar.SetCurrent(50))
	assert.Equal(t, "ETA ~[10s, 10s] ETA ~[10s, 10s]", out.last())
}

func TestBar_DefaultFormat(t *testing.T) {
	bar, out := newTestBar(t, 10)

	require.NoError(t, bar.SetCurrent(10))
	assert.Equal(t, "100.00%: [..........] Done!", out.last())
}

func TestBar_DiscardOutputByDefault(t *testing.T) {
	bar, err := New(10)
	require.NoError(t, err)

	assert.NoError(t, bar.Increment(1))
	assert.Equal(t, " 10.00%: [.         ] ", bar.String())
}
