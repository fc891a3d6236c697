package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

type palette struct {
	time      string
	component string
	key       string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	time:      "\x1b[38;5;245m",
	component: "\x1b[38;5;108m",
	key:       "\x1b[38;5;109m",
	warn:      "\x1b[38;5;214m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;88m",
}

// Everforest Dark (forest greens)
var everforest = palette{
	time:      "\x1b[38;5;102m",
	component: "\x1b[38;5;108m",
	key:       "\x1b[38;5;142m",
	warn:      "\x1b[38;5;179m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;52m",
}

var currentTheme = "gruvbox"

// SetTheme selects the console color theme: gruvbox (default) or everforest.
// Unknown names are ignored.
func SetTheme(theme string) {
	switch strings.ToLower(theme) {
	case "gruvbox", "everforest":
		currentTheme = strings.ToLower(theme)
	}
}

func colors() palette {
	if currentTheme == "everforest" {
		return everforest
	}
	return gruvbox
}

var bufferPool = buffer.NewPool()

// minimalEncoder is a compact console encoder.
// Format: "13:04:35  export  Component exported  component=Foo path=out/Foo.vue"
//
// Fields attached with Logger.With are captured by the embedded map encoder
// and printed sorted by key before the per-entry fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := bufferPool.Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if ent.Level >= zapcore.WarnLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level, c))
	} else if ent.Level == zapcore.DebugLevel {
		final.AppendString("  DEBUG")
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	pairs := sortedPairs(enc.Fields)
	for _, f := range fields {
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		pairs = append(pairs, sortedPairs(m.Fields)...)
	}
	for _, p := range pairs {
		final.AppendString("  ")
		final.AppendString(c.key)
		final.AppendString(p[0])
		final.AppendString(colorReset)
		final.AppendString("=")
		final.AppendString(p[1])
	}

	final.AppendString("\n")
	return final, nil
}

// sortedPairs renders a field map as key/value pairs ordered by key.
// zap's "<key>Verbose" companions (stack dumps of rich errors) are dropped.
func sortedPairs(fields map[string]interface{}) [][2]string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.HasSuffix(k, "Verbose") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, fmt.Sprint(fields[k])})
	}
	return pairs
}

func levelColorString(level zapcore.Level, c palette) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}
