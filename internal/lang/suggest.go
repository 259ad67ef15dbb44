package lang

import (
	"sort"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

var (
	suggestOnce  sync.Once
	suggestModel *fuzzy.Model
)

func buildModel() {
	suggestModel = fuzzy.NewModel()
	suggestModel.SetThreshold(1)
	suggestModel.SetDepth(2)
	words := IDs()
	for alias := range aliases {
		words = append(words, alias)
	}
	sort.Strings(words)
	suggestModel.Train(words)
}

// Suggest は未対応の言語 ID に対して「もしかして」候補を返します。
// 候補が見つからない場合は空のスライスを返します。
func Suggest(id string) []string {
	suggestOnce.Do(buildModel)
	norm := strings.ToLower(strings.TrimSpace(id))
	if norm == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, cand := range suggestModel.Suggestions(norm, false) {
		canon := Normalize(cand)
		if canon == norm || !Supported(canon) {
			continue
		}
		if _, ok := seen[canon]; ok {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	sort.Strings(out)
	return out
}
