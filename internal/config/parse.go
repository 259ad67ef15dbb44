package config

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

func ParseBool(raw, field string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid bool for %s: %q", field, raw)
}

func ParseIntInRange(raw, field string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", field, raw)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", field, min, max)
	}
	return n, nil
}

// ParseKeywordList reads "TOKEN=#RRGGBB,TOKEN2=#RGB" pairs (env/flag form).
func ParseKeywordList(raw, field string) (map[string]string, error) {
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.Index(part, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid %s entry: %q (want TOKEN=#RRGGBB)", field, part)
		}
		out[strings.TrimSpace(part[:idx])] = strings.TrimSpace(part[idx+1:])
	}
	return out, nil
}
