package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tasker/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestWidth(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("COLUMNS", "")
	assert.Equal(t, output.DefaultWidth, output.Width(&buf))

	t.Setenv("COLUMNS", "42")
	assert.Equal(t, 42, output.Width(&buf))

	t.Setenv("COLUMNS", "wide")
	assert.Equal(t, output.DefaultWidth, output.Width(&buf))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "-----", output.Separator(5))
	assert.Equal(t, strings.Repeat("-", output.DefaultWidth), output.Separator(0))
}
