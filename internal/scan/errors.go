package scan

import "errors"

var (
	errTooShort      = errors.New("token shorter than min_keyword_length")
	errBadCharset    = errors.New("token must match [A-Za-z0-9_-]+")
	errBadColor      = errors.New("color must be #RGB or #RRGGBB")
	errRegexDisabled = errors.New("regex keywords are disabled")
	errEmptyPattern  = errors.New("empty regex pattern")
)
