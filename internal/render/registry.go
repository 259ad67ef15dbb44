package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/codetint/codetint/internal/colorutil"
	"github.com/codetint/codetint/internal/model"
)

// Handle はレジストリに登録された装飾 1 件を指す不透明な識別子です。
type Handle string

// Registry は VisualRule から組み立てたターミナル用スタイルをハンドル単位で
// 保持します。設定変更のたびに古いハンドルを Dispose してから新しいものを
// 登録するのが呼び出し側の責務です（ホスト資源のリーク防止）。
type Registry struct {
	enabled bool
	styles  map[Handle]lipgloss.Style
	icons   map[Handle]string
}

func NewRegistry(colorEnabled bool) *Registry {
	return &Registry{
		enabled: colorEnabled,
		styles:  make(map[Handle]lipgloss.Style),
		icons:   make(map[Handle]string),
	}
}

// Register は VisualRule をコンパイルしてハンドルを払い出します。
func (r *Registry) Register(rule model.VisualRule) Handle {
	h := Handle(uuid.NewString())
	r.styles[h] = styleFor(rule)
	r.icons[h] = rule.Icon
	return h
}

// Dispose releases a handle. Unknown handles are a no-op.
func (r *Registry) Dispose(h Handle) {
	delete(r.styles, h)
	delete(r.icons, h)
}

// DisposeAll releases every registered handle.
func (r *Registry) DisposeAll() {
	for h := range r.styles {
		r.Dispose(h)
	}
}

func (r *Registry) Len() int { return len(r.styles) }

// Apply はテキスト中の各 Span をハンドルのスタイルで塗って返します。
// Span はバイトオフセットで、重なり合う範囲は後勝ちではなく先勝ちで無視します。
// 同一の Span が重複していても出力は冪等です。
func (r *Registry) Apply(h Handle, text string, spans []model.Span) string {
	style, ok := r.styles[h]
	if !ok || len(spans) == 0 {
		return text
	}
	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	icon := r.icons[h]
	pos := 0
	for _, sp := range sorted {
		if sp.Start < pos || sp.End > len(text) || sp.End <= sp.Start {
			continue
		}
		b.WriteString(text[pos:sp.Start])
		if icon != "" {
			b.WriteString(icon)
			b.WriteString(" ")
		}
		if r.enabled {
			b.WriteString(style.Render(text[sp.Start:sp.End]))
		} else {
			b.WriteString(text[sp.Start:sp.End])
		}
		pos = sp.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

// Placement pairs a span with the handle that should paint it.
type Placement struct {
	Span   model.Span
	Handle Handle
}

// ApplyMany paints spans belonging to different handles in a single pass.
// Overlapping placements resolve first-wins by start offset, like Apply.
func (r *Registry) ApplyMany(text string, placements []Placement) string {
	if len(placements) == 0 {
		return text
	}
	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End < sorted[j].Span.End
		}
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	var b strings.Builder
	pos := 0
	for _, p := range sorted {
		sp := p.Span
		style, ok := r.styles[p.Handle]
		if !ok || sp.Start < pos || sp.End > len(text) || sp.End <= sp.Start {
			continue
		}
		b.WriteString(text[pos:sp.Start])
		if icon := r.icons[p.Handle]; icon != "" {
			b.WriteString(icon)
			b.WriteString(" ")
		}
		if r.enabled {
			b.WriteString(style.Render(text[sp.Start:sp.End]))
		} else {
			b.WriteString(text[sp.Start:sp.End])
		}
		pos = sp.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

// styleFor maps a host-agnostic VisualRule onto lipgloss. Border has no inline
// equivalent in a cell grid, so the adapter renders it as reverse video.
func styleFor(rule model.VisualRule) lipgloss.Style {
	style := lipgloss.NewStyle()
	if rule.Foreground != "" {
		style = style.Foreground(lipgloss.Color(rule.Foreground))
	}
	if rule.Background != "" {
		style = style.Background(lipgloss.Color(flattenAlpha(rule.Background)))
	}
	if rule.Border != "" {
		style = style.Reverse(true)
	}
	if rule.Underline != "" {
		style = style.Underline(true)
	}
	switch rule.FontWeight {
	case "bold", "bolder":
		style = style.Bold(true)
	}
	return style
}

// flattenAlpha composites an 8-digit hex color over a dark terminal background,
// since ANSI colors carry no alpha channel.
func flattenAlpha(hex string) string {
	rgb, alpha, err := colorutil.ParseHex(hex)
	if err != nil {
		return hex
	}
	if alpha >= 1 {
		return rgb.Hex()
	}
	return colorutil.Blend(rgb, colorutil.RGB{R: 30, G: 30, B: 30}, alpha).Hex()
}
