package diagnostic

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/shunsock/shot/internal/loader"
	"github.com/shunsock/shot/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestPrintError_LoaderFamily(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	PrintError(&out, &loader.Error{Kind: loader.TooFewOptions})
	assert.Contains(t, out.String(), "[LOAD ERROR]")
}

func TestPrintResult_SkipsVoid(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	PrintResult(&out, value.None)
	assert.Equal(t, "", out.String())
}

func TestPrintResult_PrintsValue(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	PrintResult(&out, value.IntegerValue{Val: 42})
	assert.Equal(t, "42\n", out.String())
}
