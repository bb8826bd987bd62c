package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPaint_Enabled(t *testing.T) {
	p := Painter{Enabled: true}
	assert.Equal(t, "\033[31mdanger\033[0m", p.Paint(Red, "danger"))
}

func TestPaint_Disabled(t *testing.T) {
	p := Painter{}
	assert.Equal(t, "danger", p.Paint(Red, "danger"))
}

func TestPaintf(t *testing.T) {
	p := Painter{Enabled: true}
	assert.Equal(t, "\033[32mhp: 42\033[0m", p.Paintf(Green, "hp: %d", 42))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
}

func TestStripANSI_NoEscapes(t *testing.T) {
	assert.Equal(t, "plain text", StripANSI("plain text"))
	assert.Equal(t, "", StripANSI(""))
}

// Property: StripANSI(Paint(style, text)) == text for any ASCII text.
func TestPropertyStripANSIInversesPaint(t *testing.T) {
	styles := []string{Red, Green, Yellow, Cyan, Magenta, Bold, Dim, BrightYellow, BrightCyan, BrightWhite}
	p := Painter{Enabled: true}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,50}`).Draw(t, "text")
		style := styles[rapid.IntRange(0, len(styles)-1).Draw(t, "style")]
		if got := StripANSI(p.Paint(style, text)); got != text {
			t.Fatalf("StripANSI(Paint(%q)) = %q", text, got)
		}
	})
}
